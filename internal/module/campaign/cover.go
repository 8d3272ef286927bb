package campaign

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/media"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkOwnership 校验活动属于当前用户，失败时统一返回资源不存在
func checkOwnership(c *gin.Context, id uint, userID uint) bool {
	var campaign model.Campaign
	err := database.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		} else {
			log.Error("查询活动失败", "error", err, "id", id)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return false
	}
	return true
}

// UploadCover 服务端直传活动封面，成功后更新活动的封面地址
func UploadCover(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	id, err := validID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if media.Default == nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未配置"))
		return
	}

	if !checkOwnership(c, id, payload.UserID) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少上传文件"))
		return
	}

	coverURL, err := media.Default.Upload(c.Request.Context(), fileHeader)
	if err != nil {
		log.Error("上传封面失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Model(&model.Campaign{}).
		Where("id = ? AND user_id = ?", id, payload.UserID).
		Update("cover_url", coverURL).Error; err != nil {
		log.Error("更新封面地址失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("封面上传成功", "id", id, "cover_url", coverURL)
	response.Success(c, map[string]interface{}{
		"cover_url": coverURL,
	})
}

// PresignCoverReq 预签名上传请求
type PresignCoverReq struct {
	Filename    string `json:"filename" binding:"required"` // 原始文件名
	ContentType string `json:"content_type"`                // 文件 MIME 类型
	ExpiresIn   int64  `json:"expires_in"`                  // 过期时间（秒）
}

// PresignCoverUpload 生成封面的预签名上传 URL，前端直传后
// 通过更新接口把 file_url 写入活动的 cover_url
func PresignCoverUpload(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	id, err := validID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if media.Default == nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未配置"))
		return
	}

	if !checkOwnership(c, id, payload.UserID) {
		return
	}

	var req PresignCoverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	result, err := media.Default.GeneratePresignedUploadURL(c.Request.Context(), media.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		log.Error("生成预签名上传 URL 失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, result)
}

// PresignCoverDownload 为私有存储桶中的对象生成预签名下载 URL
func PresignCoverDownload(c *gin.Context) {
	if _, ok := jwt.GetUserPayload(c); !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	if media.Default == nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未配置"))
		return
	}

	key := c.Query("key")
	if key == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少文件 key"))
		return
	}

	downloadURL, err := media.Default.GeneratePresignedDownloadURL(c.Request.Context(), key, 0)
	if err != nil {
		log.Error("生成预签名下载 URL 失败", "error", err, "key", key)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"download_url": downloadURL,
	})
}
