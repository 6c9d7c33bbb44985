package controllers

import (
	"net/http"
	"time"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/models"
	"github.com/Clyding/EmotionCV/utils"

	"github.com/gin-gonic/gin"
)

// ContactController 紧急联系人控制器
type ContactController struct{}

// AddContact 添加紧急联系人
func (cc *ContactController) AddContact(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.EmergencyContact{
		ID:           utils.GenerateID(),
		UserID:       uid.(string),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		IsPrimary:    req.IsPrimary,
		CreatedAt:    time.Now(),
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		config.Logger.Errorw("紧急联系人创建失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "紧急联系人创建失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Emergency contact added successfully",
		"contact": contact,
	})
}

// ListContacts 获取当前用户的全部紧急联系人
func (cc *ContactController) ListContacts(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var contacts []models.EmergencyContact
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&contacts).Error; err != nil {
		config.Logger.Errorw("获取紧急联系人失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取紧急联系人失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"count":    len(contacts),
	})
}
