package models

import "time"

// EmergencyContact 紧急联系人模型。核心流程只在触发紧急响应时
// 读取联系人用于生成告警文案，不拥有联系人数据的其它语义
type EmergencyContact struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Phone        string    `gorm:"type:varchar(25)" json:"phone"`
	Email        string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Relationship string    `gorm:"type:varchar(50)" json:"relationship,omitempty"`
	IsPrimary    bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
}
