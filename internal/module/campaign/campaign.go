package campaign

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CampaignCreateReq 定义创建活动请求的结构体
type CampaignCreateReq struct {
	Title       string   `json:"title" binding:"required"` // 活动标题
	Description string   `json:"description"`              // 活动描述
	Budget      *float64 `json:"budget"`                   // 预算，可选，必须为正数
	StartDate   string   `json:"start_date"`               // 开始日期 YYYY-MM-DD，可选
	EndDate     string   `json:"end_date"`                 // 结束日期 YYYY-MM-DD，可选
}

// CampaignUpdateReq 定义更新活动请求的结构体，使用指针类型支持部分更新
type CampaignUpdateReq struct {
	Title       *string  `json:"title"`       // 活动标题，可选
	Description *string  `json:"description"` // 活动描述，可选
	Budget      *float64 `json:"budget"`      // 预算，可选，必须为正数
	StartDate   *string  `json:"start_date"`  // 开始日期，可选，空串表示清除
	EndDate     *string  `json:"end_date"`    // 结束日期，可选，空串表示清除
	CoverURL    *string  `json:"cover_url"`   // 封面图地址，可选
}

const dateLayout = "2006-01-02"

// parseDate 解析 YYYY-MM-DD 日期，空串返回 nil
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// validID 校验路径参数中的活动ID
func validID(idStr string) (uint, error) {
	if idStr == "" {
		return 0, response.ErrInvalidRequest.WithTips("活动ID不能为空")
	}
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest.WithTips("活动ID格式错误")
	}
	return uint(id), nil
}

// ListCampaigns 返回当前用户的全部活动，按创建时间倒序
// 所有者过滤是强制的，任何用户都看不到他人的活动
func ListCampaigns(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var campaigns []model.Campaign
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		log.Error("获取活动列表失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, campaigns)
}

// GetCampaign 返回单个活动
// 活动不存在与活动属于他人返回同样的错误，避免向非所有者暴露活动是否存在
func GetCampaign(c *gin.Context) {
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

	var campaign model.Campaign
	dbErr := database.DB.
		Where("id = ? AND user_id = ?", id, payload.UserID).
		First(&campaign).Error
	if dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", dbErr, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c, campaign)
}

// CreateCampaign 处理创建活动请求
func CreateCampaign(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req CampaignCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 预算必须为正数；校验全部通过前不触碰数据库
	if req.Budget != nil && *req.Budget <= 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("预算必须为正数"))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("开始日期格式错误，应为 YYYY-MM-DD"))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("结束日期格式错误，应为 YYYY-MM-DD"))
		return
	}

	campaign := model.Campaign{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   startDate,
		EndDate:     endDate,
		UserID:      payload.UserID,
	}

	if err := database.DB.Create(&campaign).Error; err != nil {
		log.Error("创建活动失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功",
		"id", campaign.ID,
		"title", campaign.Title,
		"user_id", payload.UserID)

	response.Success(c, campaign)
}

// UpdateCampaign 处理更新活动请求
// 所有者条件直接写进 UPDATE 谓词，对他人的活动执行更新不会产生任何写入
func UpdateCampaign(c *gin.Context) {
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

	var req CampaignUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新活动请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		if *req.Title == "" {
			response.Fail(c, response.ErrInvalidRequest.WithTips("活动标题不能为空"))
			return
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Budget != nil {
		if *req.Budget <= 0 {
			response.Fail(c, response.ErrInvalidRequest.WithTips("预算必须为正数"))
			return
		}
		updates["budget"] = *req.Budget
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("开始日期格式错误，应为 YYYY-MM-DD"))
			return
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("结束日期格式错误，应为 YYYY-MM-DD"))
			return
		}
		updates["end_date"] = endDate
	}
	if req.CoverURL != nil {
		updates["cover_url"] = *req.CoverURL
	}

	if len(updates) > 0 {
		result := database.DB.Model(&model.Campaign{}).
			Where("id = ? AND user_id = ?", id, payload.UserID).
			Updates(updates)
		if result.Error != nil {
			log.Error("更新活动失败", "error", result.Error, "id", id)
			response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
			return
		}
	}

	// 回查一次：区分"活动不存在/不属于当前用户"与"更新值与原值相同"
	var campaign model.Campaign
	dbErr := database.DB.
		Where("id = ? AND user_id = ?", id, payload.UserID).
		First(&campaign).Error
	if dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", dbErr, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	log.Info("活动更新成功", "id", campaign.ID, "user_id", payload.UserID)
	response.Success(c, campaign)
}

// DeleteCampaign 处理删除活动请求
// 关联的达人分配记录由数据库外键级联删除，应用层不做清理
func DeleteCampaign(c *gin.Context) {
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

	result := database.DB.
		Where("id = ? AND user_id = ?", id, payload.UserID).
		Delete(&model.Campaign{})
	if result.Error != nil {
		log.Error("删除活动失败", "error", result.Error, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		return
	}

	log.Info("活动删除成功", "id", id, "user_id", payload.UserID)
	response.Success(c)
}
