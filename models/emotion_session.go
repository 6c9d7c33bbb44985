package models

import (
	"encoding/json"
	"time"

	"github.com/Clyding/EmotionCV/pipeline"
)

// EmotionSession 情绪分析会话记录。每次analyze请求恰好创建一条，
// 创建后不可变更。融合情绪分布和风险报告序列化为JSON文本列存储
type EmotionSession struct {
	ID                 string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID             string    `gorm:"type:varchar(50);index" json:"user_id"`
	SessionDate        time.Time `json:"session_date"`
	TextInput          string    `gorm:"type:text" json:"text_input"`
	AIResponse         string    `gorm:"type:text" json:"ai_response"`
	EmotionScores      string    `gorm:"type:text" json:"-"`
	RiskAssessment     string    `gorm:"type:text" json:"-"`
	EmergencyTriggered bool      `gorm:"default:false" json:"emergency_triggered"`
}

// SetEmotionScores 将融合情绪分布编码进JSON文本列
func (s *EmotionSession) SetEmotionScores(d pipeline.Distribution) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.EmotionScores = string(data)
	return nil
}

// GetEmotionScores 解码存储的融合情绪分布，空列返回全零分布
func (s *EmotionSession) GetEmotionScores() (pipeline.Distribution, error) {
	d := pipeline.NewDistribution()
	if s.EmotionScores == "" {
		return d, nil
	}
	if err := json.Unmarshal([]byte(s.EmotionScores), &d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetRiskAssessment 将风险报告编码进JSON文本列
func (s *EmotionSession) SetRiskAssessment(r pipeline.RiskReport) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	s.RiskAssessment = string(data)
	return nil
}

// GetRiskAssessment 解码存储的风险报告
func (s *EmotionSession) GetRiskAssessment() (pipeline.RiskReport, error) {
	var r pipeline.RiskReport
	if s.RiskAssessment == "" {
		return r, nil
	}
	if err := json.Unmarshal([]byte(s.RiskAssessment), &r); err != nil {
		return pipeline.RiskReport{}, err
	}
	return r, nil
}
