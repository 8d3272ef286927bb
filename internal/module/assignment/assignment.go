package assignment

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AssignReq 定义分配与取消分配请求的结构体
type AssignReq struct {
	CampaignID   uint `json:"campaign_id" binding:"required"`   // 活动ID
	InfluencerID uint `json:"influencer_id" binding:"required"` // 达人ID
}

// checkCampaignOwner 校验活动存在且属于当前用户
// 不存在与不属于当前用户返回同样的错误，不向非所有者暴露活动是否存在
func checkCampaignOwner(c *gin.Context, campaignID, userID uint) bool {
	var campaign model.Campaign
	err := database.DB.
		Select("id").
		Where("id = ? AND user_id = ?", campaignID, userID).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		} else {
			log.Error("查询活动失败", "error", err, "campaign_id", campaignID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return false
	}
	return true
}

// Assign 把达人分配到活动
// 同一对 (campaign_id, influencer_id) 依赖唯一索引保证只有一行：
// 并发的两次分配最多一次成功，失败方收到冲突错误而不是底层存储错误
func Assign(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定分配请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !checkCampaignOwner(c, req.CampaignID, payload.UserID) {
		return
	}

	assoc := model.CampaignInfluencer{
		CampaignID:   req.CampaignID,
		InfluencerID: req.InfluencerID,
	}

	if err := database.DB.Create(&assoc).Error; err != nil {
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("该达人已分配到此活动"))
			return
		}
		log.Error("创建分配记录失败", "error", err,
			"campaign_id", req.CampaignID,
			"influencer_id", req.InfluencerID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("达人分配成功",
		"campaign_id", req.CampaignID,
		"influencer_id", req.InfluencerID,
		"user_id", payload.UserID)

	response.Success(c, assoc)
}

// Unassign 取消达人分配
// 关联不存在时报错而不是静默成功，让客户端及时发现状态不一致
func Unassign(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定取消分配请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !checkCampaignOwner(c, req.CampaignID, payload.UserID) {
		return
	}

	result := database.DB.
		Where("campaign_id = ? AND influencer_id = ?", req.CampaignID, req.InfluencerID).
		Delete(&model.CampaignInfluencer{})
	if result.Error != nil {
		log.Error("删除分配记录失败", "error", result.Error,
			"campaign_id", req.CampaignID,
			"influencer_id", req.InfluencerID)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("该达人未分配到此活动"))
		return
	}

	log.Info("取消分配成功",
		"campaign_id", req.CampaignID,
		"influencer_id", req.InfluencerID,
		"user_id", payload.UserID)

	response.Success(c)
}

// Count 返回活动当前分配的达人数量
func Count(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	campaignIDStr := c.Query("campaign_id")
	if campaignIDStr == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}
	campaignID, err := strconv.ParseUint(campaignIDStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID格式错误"))
		return
	}

	if !checkCampaignOwner(c, uint(campaignID), payload.UserID) {
		return
	}

	var sum int64
	if err := database.DB.
		Model(&model.CampaignInfluencer{}).
		Where("campaign_id = ?", campaignID).
		Count(&sum).Error; err != nil {
		log.Error("统计分配数量失败", "error", err, "campaign_id", campaignID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, sum)
}
