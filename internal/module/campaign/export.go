package campaign

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"campaign-manager/tools"
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// reportRow 报表导出的行结构，表头取 excel 标签
type reportRow struct {
	Name           string  `excel:"达人名称"`
	FollowerCount  int     `excel:"粉丝数"`
	EngagementRate float64 `excel:"互动率(%)"`
	AssignedAt     string  `excel:"分配时间"`
}

type reportScanRow struct {
	Name           string
	FollowerCount  int
	EngagementRate float64
	AssignedAt     time.Time
}

const reportSheet = "达人列表"

// buildReport 把分配明细写入工作簿
func buildReport(rows []reportScanRow) (*excelize.File, error) {
	data := make([]reportRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, reportRow{
			Name:           r.Name,
			FollowerCount:  r.FollowerCount,
			EngagementRate: r.EngagementRate,
			AssignedAt:     r.AssignedAt.Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	if err := tools.ExportToExcel(f, reportSheet, data); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ExportCampaign 导出活动的达人分配报表（xlsx）
func ExportCampaign(c *gin.Context) {
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

	// 所有权检查与单条查询一致：不存在和不属于当前用户不作区分
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

	var rows []reportScanRow
	if err := database.DB.
		Table("campaign_influencers").
		Select("influencers.name, influencers.follower_count, influencers.engagement_rate, campaign_influencers.assigned_at").
		Joins("JOIN influencers ON influencers.id = campaign_influencers.influencer_id").
		Where("campaign_influencers.campaign_id = ?", id).
		Order("campaign_influencers.assigned_at").
		Scan(&rows).Error; err != nil {
		log.Error("查询分配明细失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f, err := buildReport(rows)
	if err != nil {
		log.Error("生成报表失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	displayName := url.QueryEscape(campaign.Title + ".xlsx")
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, displayName, displayName),
	)

	if err := f.Write(c.Writer); err != nil {
		log.Error("写出报表失败", "error", err, "id", id)
	}
}
