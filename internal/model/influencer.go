package model

// Influencer 达人是全局共享数据，不属于某个用户
type Influencer struct {
	Model
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`
	FollowerCount  int     `gorm:"not null;default:0" json:"follower_count"`
	EngagementRate float64 `gorm:"type:decimal(5,2);not null;default:0.00" json:"engagement_rate"`
}
