package influencer

import (
	"campaign-manager/internal/global/cache"
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listCacheKey 达人列表的缓存键；达人数据量小且读多写少，整表缓存
const listCacheKey = "influencer:list"

const listCacheTTL = 5 * time.Minute

// InfluencerCreateReq 定义创建达人请求的结构体
type InfluencerCreateReq struct {
	Name           string  `json:"name" binding:"required"` // 达人名称
	FollowerCount  int     `json:"follower_count"`          // 粉丝数，默认 0
	EngagementRate float64 `json:"engagement_rate"`         // 互动率（百分比），默认 0.00
}

// validID 校验路径参数中的达人ID
func validID(idStr string) (uint, error) {
	if idStr == "" {
		return 0, response.ErrInvalidRequest.WithTips("达人ID不能为空")
	}
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest.WithTips("达人ID格式错误")
	}
	return uint(id), nil
}

// ListInfluencers 返回全部达人，按粉丝数倒序，不做所有者过滤
func ListInfluencers(c *gin.Context) {
	// 先查缓存
	if cached := cache.GetJSON(c.Request.Context(), listCacheKey); cached != "" {
		response.Success(c, json.RawMessage(cached))
		return
	}

	var influencers []model.Influencer
	if err := database.DB.
		Order("follower_count DESC").
		Find(&influencers).Error; err != nil {
		log.Error("获取达人列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if raw, err := json.Marshal(influencers); err == nil {
		cache.SetJSON(c.Request.Context(), listCacheKey, string(raw), listCacheTTL)
	}

	response.Success(c, influencers)
}

// GetInfluencer 返回单个达人
func GetInfluencer(c *gin.Context) {
	id, err := validID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var influencer model.Influencer
	dbErr := database.DB.First(&influencer, id).Error
	if dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("达人不存在"))
			return
		}
		log.Error("查询达人失败", "error", dbErr, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c, influencer)
}

// CampaignInfluencerRow 按活动查询时返回的行：达人字段加分配时间
type CampaignInfluencerRow struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	FollowerCount  int       `json:"follower_count"`
	EngagementRate float64   `json:"engagement_rate"`
	AssignedAt     time.Time `json:"assigned_at"`
}

// ListByCampaign 返回分配到指定活动的达人
// 达人与分配关系对所有登录用户可见，这里不校验活动所有权
func ListByCampaign(c *gin.Context) {
	campaignID, err := validID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var rows []CampaignInfluencerRow
	if err := database.DB.
		Table("campaign_influencers").
		Select("influencers.id, influencers.name, influencers.follower_count, influencers.engagement_rate, campaign_influencers.assigned_at").
		Joins("JOIN influencers ON influencers.id = campaign_influencers.influencer_id").
		Where("campaign_influencers.campaign_id = ?", campaignID).
		Order("campaign_influencers.assigned_at").
		Scan(&rows).Error; err != nil {
		log.Error("查询活动达人失败", "error", err, "campaign_id", campaignID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, rows)
}

// CreateInfluencer 处理创建达人请求，任何登录用户都可以创建
func CreateInfluencer(c *gin.Context) {
	var req InfluencerCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建达人请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.FollowerCount < 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("粉丝数不能为负数"))
		return
	}
	if req.EngagementRate < 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("互动率不能为负数"))
		return
	}

	influencer := model.Influencer{
		Name:           req.Name,
		FollowerCount:  req.FollowerCount,
		EngagementRate: req.EngagementRate,
	}

	if err := database.DB.Create(&influencer).Error; err != nil {
		log.Error("创建达人失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 写操作后让列表缓存失效
	cache.Delete(c.Request.Context(), listCacheKey)

	log.Info("达人创建成功", "id", influencer.ID, "name", influencer.Name)
	response.Success(c, influencer)
}
