package assignment

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"campaign-manager/internal/module/campaign"
	"campaign-manager/test"
	"campaign-manager/tools"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCampaignAssignmentFlow 覆盖一次完整的业务流程：
// A 创建活动，B 看不到；A 分配达人，重复分配冲突，取消后关联清空
func TestCampaignAssignmentFlow(t *testing.T) {
	(&campaign.ModuleCampaign{}).Init()
	test.SetupDB(t)

	userA, userB, _, influencerX := seed(t)

	budget := 1000.0
	resp := test.DoRequest(t, campaign.CreateCampaign, campaign.CampaignCreateReq{
		Title:  "Summer Launch",
		Budget: &budget,
	}, test.AsUser(userA.ID))
	test.NoError(t, resp)
	var created model.Campaign
	test.DecodeData(t, resp, &created)
	require.Nil(t, created.StartDate)
	require.Nil(t, created.EndDate)

	// B 的会话访问 A 的活动，与不存在无法区分
	resp = test.DoRequest(t, campaign.GetCampaign, nil,
		test.AsUser(userB.ID), test.WithParam("id", tools.UintToString(created.ID)))
	test.CodeEqual(t, response.ErrNotFound, resp)

	req := AssignReq{CampaignID: created.ID, InfluencerID: influencerX.ID}
	resp = test.DoRequest(t, Assign, req, test.AsUser(userA.ID))
	test.NoError(t, resp)
	var assoc model.CampaignInfluencer
	test.DecodeData(t, resp, &assoc)
	require.Equal(t, created.ID, assoc.CampaignID)
	require.Equal(t, influencerX.ID, assoc.InfluencerID)

	resp = test.DoRequest(t, Assign, req, test.AsUser(userA.ID))
	test.CodeEqual(t, response.ErrAlreadyExists, resp)

	resp = test.DoRequest(t, Unassign, req, test.AsUser(userA.ID))
	test.NoError(t, resp)

	var remaining int64
	require.NoError(t, database.DB.Model(&model.CampaignInfluencer{}).
		Where("campaign_id = ? AND influencer_id = ?", created.ID, influencerX.ID).
		Count(&remaining).Error)
	require.Zero(t, remaining)
}
