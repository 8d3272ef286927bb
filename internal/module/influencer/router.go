package influencer

import (
	"campaign-manager/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleInfluencer) InitRouter(r *gin.RouterGroup) {
	// 达人模块路由组，达人是所有登录用户共享的数据
	influencerGroup := r.Group("/influencer")
	influencerGroup.Use(middleware.Auth())
	{
		influencerGroup.GET("/list", ListInfluencers)
		influencerGroup.GET("/get/:id", GetInfluencer)
		influencerGroup.GET("/by-campaign/:id", ListByCampaign)
		influencerGroup.POST("/create", CreateInfluencer)
		influencerGroup.POST("/sync/:id", SyncInfluencer)
	}
}
