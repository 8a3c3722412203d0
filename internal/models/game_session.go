package models

import (
	"time"
)

// GameSession 跑团会话记录表
// 只追加不修改：会话一旦写入即不可变，没有更新和删除操作
// session_number 由调用方提供，服务端不保证唯一也不自动递增
type GameSession struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CampaignID    uint        `gorm:"not null;index" json:"campaign_id"`
	SessionNumber int         `gorm:"not null" json:"session_number"`
	Narrative     string      `gorm:"type:text;not null" json:"narrative"`
	DiceRolls     DiceRollLog `gorm:"type:json" json:"dice_rolls"`
	CreatedAt     time.Time   `json:"created_at"`

	// 关联
	Campaign Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定GameSession表名
func (GameSession) TableName() string {
	return "game_sessions"
}
