package assignment

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"campaign-manager/test"
	"campaign-manager/tools"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModuleAssignment{}).Init()
	os.Exit(m.Run())
}

func seed(t *testing.T) (owner model.User, stranger model.User, campaign model.Campaign, influencer model.Influencer) {
	owner = model.User{Email: "owner@example.com", Password: tools.PasswordEncrypt("password123"), NickName: "所有者"}
	require.NoError(t, database.DB.Create(&owner).Error)
	stranger = model.User{Email: "stranger@example.com", Password: tools.PasswordEncrypt("password123"), NickName: "路人"}
	require.NoError(t, database.DB.Create(&stranger).Error)
	campaign = model.Campaign{Title: "品牌合作", UserID: owner.ID}
	require.NoError(t, database.DB.Create(&campaign).Error)
	influencer = model.Influencer{Name: "达人甲", FollowerCount: 10000}
	require.NoError(t, database.DB.Create(&influencer).Error)
	return
}

func TestAssignOnceThenConflict(t *testing.T) {
	test.SetupDB(t)
	owner, _, campaign, influencer := seed(t)

	req := AssignReq{CampaignID: campaign.ID, InfluencerID: influencer.ID}
	resp := test.DoRequest(t, Assign, req, test.AsUser(owner.ID))
	test.NoError(t, resp)

	// 重复分配走唯一索引冲突
	resp = test.DoRequest(t, Assign, req, test.AsUser(owner.ID))
	test.CodeEqual(t, response.ErrAlreadyExists, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.CampaignInfluencer{}).
		Where("campaign_id = ? AND influencer_id = ?", campaign.ID, influencer.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAssignRequiresCampaignOwnership(t *testing.T) {
	test.SetupDB(t)
	_, stranger, campaign, influencer := seed(t)

	resp := test.DoRequest(t, Assign,
		AssignReq{CampaignID: campaign.ID, InfluencerID: influencer.ID},
		test.AsUser(stranger.ID))
	test.CodeEqual(t, response.ErrNotFound, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.CampaignInfluencer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUnassign(t *testing.T) {
	test.SetupDB(t)
	owner, _, campaign, influencer := seed(t)

	req := AssignReq{CampaignID: campaign.ID, InfluencerID: influencer.ID}

	// 尚未分配时取消报不存在
	resp := test.DoRequest(t, Unassign, req, test.AsUser(owner.ID))
	test.CodeEqual(t, response.ErrNotFound, resp)

	test.NoError(t, test.DoRequest(t, Assign, req, test.AsUser(owner.ID)))
	test.NoError(t, test.DoRequest(t, Unassign, req, test.AsUser(owner.ID)))

	// 取消后可以重新分配
	test.NoError(t, test.DoRequest(t, Assign, req, test.AsUser(owner.ID)))
}

func TestCount(t *testing.T) {
	test.SetupDB(t)
	owner, stranger, campaign, influencer := seed(t)
	second := model.Influencer{Name: "达人乙", FollowerCount: 500}
	require.NoError(t, database.DB.Create(&second).Error)

	test.NoError(t, test.DoRequest(t, Assign,
		AssignReq{CampaignID: campaign.ID, InfluencerID: influencer.ID}, test.AsUser(owner.ID)))
	test.NoError(t, test.DoRequest(t, Assign,
		AssignReq{CampaignID: campaign.ID, InfluencerID: second.ID}, test.AsUser(owner.ID)))

	query := "campaign_id=" + tools.UintToString(campaign.ID)
	resp := test.DoRequest(t, Count, nil, test.AsUser(owner.ID), test.WithQuery(query))
	test.NoError(t, resp)
	var sum int64
	test.DecodeData(t, resp, &sum)
	require.Equal(t, int64(2), sum)

	// 非所有者统计同样不可见
	resp = test.DoRequest(t, Count, nil, test.AsUser(stranger.ID), test.WithQuery(query))
	test.CodeEqual(t, response.ErrNotFound, resp)

	resp = test.DoRequest(t, Count, nil, test.AsUser(owner.ID))
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}
