package model

import "time"

type Campaign struct {
	Model
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`   // 活动标题
	Description string     `gorm:"type:text" json:"description"`              // 活动描述
	Budget      *float64   `gorm:"type:decimal(10,2)" json:"budget"`          // 预算，可空
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`               // 开始日期，可空
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`                 // 结束日期，可空
	CoverURL    string     `gorm:"type:varchar(255)" json:"cover_url"`        // 封面图访问地址
	UserID      uint       `gorm:"not null;index" json:"user_id"`             // 所有者，所有读写都按该字段过滤
	User        User       `gorm:"foreignKey:UserID" json:"-"`
}
