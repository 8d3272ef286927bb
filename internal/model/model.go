package model

import (
	"time"
)

// Model 公共字段；删除必须是物理删除，级联清理依赖数据库外键
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
