package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/models"

	"github.com/gin-gonic/gin"
)

const defaultSessionLimit = 50

// 会话列表缓存TTL
const sessionsCacheTTL = 5 * time.Minute

// sessionsCacheKey 返回用户会话列表的缓存键，
// 仅缓存默认limit的列表，新会话写入时整键失效
func sessionsCacheKey(userID string) string {
	return fmt.Sprintf("sessions:%s", userID)
}

// SessionController 会话记录控制器
type SessionController struct{}

// GetSessions 获取当前用户的情绪分析会话，按时间倒序。
// 默认limit走Redis缓存，缓存未命中时读库并回填
func (sc *SessionController) GetSessions(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}
	userID := uid.(string)

	limit := defaultSessionLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的limit参数"})
			return
		}
		limit = parsed
	}

	// 默认limit优先走缓存
	if limit == defaultSessionLimit {
		cached, err := config.RedisClient.Get(c.Request.Context(), sessionsCacheKey(userID)).Result()
		if err == nil {
			var response models.SessionListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				c.JSON(http.StatusOK, response)
				return
			}
			config.Logger.Warnw("会话缓存解码失败", "uid", userID, "error", err)
		}
	}

	var sessions []models.EmotionSession
	if err := config.DB.Where("user_id = ?", userID).
		Order("session_date DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		config.Logger.Errorw("获取会话记录失败", "error", err, "uid", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取会话记录失败"})
		return
	}

	response := models.SessionListResponse{
		Sessions: make([]models.SessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		scores, err := session.GetEmotionScores()
		if err != nil {
			config.Logger.Errorw("情绪分布解码失败", "error", err, "sessionID", session.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "会话数据解码失败"})
			return
		}
		risk, err := session.GetRiskAssessment()
		if err != nil {
			config.Logger.Errorw("风险报告解码失败", "error", err, "sessionID", session.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "会话数据解码失败"})
			return
		}

		response.Sessions = append(response.Sessions, models.SessionResponse{
			ID:                 session.ID,
			SessionDate:        session.SessionDate,
			TextInput:          session.TextInput,
			AIResponse:         session.AIResponse,
			EmotionScores:      scores,
			RiskAssessment:     risk,
			EmergencyTriggered: session.EmergencyTriggered,
		})
	}
	response.Count = len(response.Sessions)

	// 回填缓存，失败只记日志
	if limit == defaultSessionLimit {
		if data, err := json.Marshal(response); err == nil {
			if err := config.RedisClient.Set(c.Request.Context(), sessionsCacheKey(userID), data, sessionsCacheTTL).Err(); err != nil {
				config.Logger.Warnw("会话缓存写入失败", "error", err, "uid", userID)
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
