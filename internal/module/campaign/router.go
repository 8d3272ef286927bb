package campaign

import (
	"campaign-manager/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleCampaign) InitRouter(r *gin.RouterGroup) {
	// 活动模块路由组，所有端点都要求登录
	campaignGroup := r.Group("/campaign")
	campaignGroup.Use(middleware.Auth())
	{
		campaignGroup.GET("/list", ListCampaigns)
		campaignGroup.GET("/get/:id", GetCampaign)
		campaignGroup.POST("/create", CreateCampaign)
		campaignGroup.PUT("/update/:id", UpdateCampaign)
		campaignGroup.DELETE("/delete/:id", DeleteCampaign)

		// 报表导出
		campaignGroup.GET("/export/:id", ExportCampaign)

		// 封面图：服务端直传与前端直传（预签名）两种方式
		campaignGroup.POST("/cover/upload/:id", UploadCover)
		campaignGroup.POST("/cover/presign/:id", PresignCoverUpload)
		campaignGroup.GET("/cover/download-url", PresignCoverDownload)
	}
}
