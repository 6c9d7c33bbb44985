package models

import (
	"time"

	"github.com/Clyding/EmotionCV/pipeline"
)

// UserResponse 用户响应结构体，不携带密码哈希
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewUserResponse 从用户模型构造响应结构体
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// EmergencyAlert 紧急告警信息，仅在触发紧急响应时出现在响应中
type EmergencyAlert struct {
	Message      string   `json:"message"`
	ActionsTaken []string `json:"actions_taken"`
}

// AnalyzeResponse 情绪分析响应结构体
type AnalyzeResponse struct {
	Success            bool                  `json:"success"`
	SessionID          string                `json:"session_id"`
	Emotions           pipeline.Distribution `json:"emotions"`
	AIResponse         string                `json:"ai_response"`
	RiskAssessment     pipeline.RiskReport   `json:"risk_assessment"`
	EmergencyTriggered bool                  `json:"emergency_triggered"`
	EmergencyAlert     *EmergencyAlert       `json:"emergency_alert,omitempty"`
}

// SessionResponse 会话记录响应结构体，JSON文本列已解码
type SessionResponse struct {
	ID                 string                `json:"id"`
	SessionDate        time.Time             `json:"session_date"`
	TextInput          string                `json:"text_input"`
	AIResponse         string                `json:"ai_response"`
	EmotionScores      pipeline.Distribution `json:"emotion_scores"`
	RiskAssessment     pipeline.RiskReport   `json:"risk_assessment"`
	EmergencyTriggered bool                  `json:"emergency_triggered"`
}

// SessionListResponse 会话列表响应结构体
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Count    int               `json:"count"`
}
