package model

import "time"

// CampaignInfluencer 活动与达人的关联，(campaign_id, influencer_id) 唯一
// 活动或达人被删除时由外键级联清理关联行
type CampaignInfluencer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CampaignID   uint      `gorm:"not null;index:idx_campaign_influencer,unique" json:"campaign_id"`
	InfluencerID uint      `gorm:"not null;index:idx_campaign_influencer,unique" json:"influencer_id"`
	AssignedAt   time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Campaign   Campaign   `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Influencer Influencer `gorm:"foreignKey:InfluencerID;constraint:OnDelete:CASCADE" json:"-"`
}
