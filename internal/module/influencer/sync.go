package influencer

import (
	"campaign-manager/config"
	"campaign-manager/internal/global/cache"
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/httpclient"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsResult 外部数据平台返回的达人统计
type statsResult struct {
	FollowerCount  int     `json:"follower_count"`
	EngagementRate float64 `json:"engagement_rate"`
}

// SyncInfluencer 从外部数据平台刷新达人的粉丝数和互动率
func SyncInfluencer(c *gin.Context) {
	id, err := validID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	enrich := config.Get().Enrich
	if enrich.BaseURL == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未配置外部数据平台"))
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

	var stats statsResult
	resp, err := httpclient.Client.R().
		SetContext(c.Request.Context()).
		SetHeader("X-API-Key", enrich.APIKey).
		SetQueryParam("name", influencer.Name).
		SetResult(&stats).
		Get(enrich.BaseURL + "/v1/influencer/stats")
	if err != nil {
		log.Error("请求外部数据平台失败", "error", err, "name", influencer.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if resp.IsError() {
		log.Error("外部数据平台返回错误", "status", resp.StatusCode(), "name", influencer.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(fmt.Errorf("stats api status %d", resp.StatusCode())))
		return
	}

	if stats.FollowerCount < 0 || stats.EngagementRate < 0 {
		response.Fail(c, response.ErrDatabase.WithOrigin(fmt.Errorf("stats api returned negative values")))
		return
	}

	if err := database.DB.Model(&influencer).Updates(map[string]interface{}{
		"follower_count":  stats.FollowerCount,
		"engagement_rate": stats.EngagementRate,
	}).Error; err != nil {
		log.Error("更新达人数据失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	cache.Delete(c.Request.Context(), listCacheKey)

	influencer.FollowerCount = stats.FollowerCount
	influencer.EngagementRate = stats.EngagementRate

	log.Info("达人数据同步成功",
		"id", influencer.ID,
		"follower_count", stats.FollowerCount,
		"engagement_rate", stats.EngagementRate)

	response.Success(c, influencer)
}
