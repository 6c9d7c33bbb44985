package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/models"
	"github.com/Clyding/EmotionCV/services"
	"github.com/Clyding/EmotionCV/utils"

	"github.com/gin-gonic/gin"
)

// AnalyzeController 情绪分析控制器
type AnalyzeController struct {
	analyzeService *services.AnalyzeService
}

func NewAnalyzeController(analyzeService *services.AnalyzeService) *AnalyzeController {
	return &AnalyzeController{
		analyzeService: analyzeService,
	}
}

// Analyze 处理情绪分析请求。
// 流程：校验 -> 流水线分析 -> 持久化会话 -> 返回结果。
// 先落库后响应：会话写入失败时返回服务端错误，不返回成功结果
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}
	userID := uid.(string)

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// 校验用户存在后才执行流水线
	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", userID)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}

	result := ac.analyzeService.Analyze(c.Request.Context(), req.TextInput, req.VoiceData, req.FacialData)

	// 构造会话记录
	session := models.EmotionSession{
		ID:                 utils.GenerateID(),
		UserID:             userID,
		SessionDate:        time.Now(),
		TextInput:          req.TextInput,
		AIResponse:         result.AIResponse,
		EmergencyTriggered: result.EmergencyTriggered,
	}
	if err := session.SetEmotionScores(result.Emotions); err != nil {
		config.Logger.Errorw("情绪分布序列化失败", "error", err, "uid", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "会话保存失败"})
		return
	}
	if err := session.SetRiskAssessment(result.RiskAssessment); err != nil {
		config.Logger.Errorw("风险报告序列化失败", "error", err, "uid", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "会话保存失败"})
		return
	}

	if err := config.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("会话保存失败", "error", err, "uid", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "会话保存失败"})
		return
	}

	// 使该用户的会话列表缓存失效，失败不影响请求结果
	cacheKey := sessionsCacheKey(userID)
	if err := config.RedisClient.Del(c.Request.Context(), cacheKey).Err(); err != nil {
		config.Logger.Warnw("会话缓存失效失败", "error", err, "key", cacheKey)
	}

	response := models.AnalyzeResponse{
		Success:            true,
		SessionID:          session.ID,
		Emotions:           result.Emotions,
		AIResponse:         result.AIResponse,
		RiskAssessment:     result.RiskAssessment,
		EmergencyTriggered: result.EmergencyTriggered,
	}

	// 触发紧急响应时附带告警信息，动作根据已配置的紧急联系人生成
	if result.EmergencyTriggered {
		response.EmergencyAlert = ac.buildEmergencyAlert(userID)
		config.Logger.Infow("触发紧急响应",
			"uid", userID,
			"sessionID", session.ID,
			"selfHarmRisk", result.RiskAssessment.SelfHarmRisk,
			"severeStressRisk", result.RiskAssessment.SevereStressRisk,
		)
	}

	c.JSON(http.StatusOK, response)
}

// buildEmergencyAlert 根据用户的紧急联系人生成告警信息
func (ac *AnalyzeController) buildEmergencyAlert(userID string) *models.EmergencyAlert {
	var contacts []models.EmergencyContact
	if err := config.DB.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		config.Logger.Errorw("获取紧急联系人失败", "error", err, "uid", userID)
		contacts = nil
	}

	if len(contacts) == 0 {
		return &models.EmergencyAlert{
			Message:      "No emergency contacts configured; support team has been alerted",
			ActionsTaken: []string{"Alerted support team"},
		}
	}

	actions := make([]string, 0, len(contacts)+1)
	for _, contact := range contacts {
		actions = append(actions, fmt.Sprintf("Contacted emergency contact: %s", contact.Name))
	}
	actions = append(actions, "Alerted support team")

	return &models.EmergencyAlert{
		Message:      "Emergency contacts have been notified",
		ActionsTaken: actions,
	}
}
