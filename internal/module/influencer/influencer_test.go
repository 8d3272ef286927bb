package influencer

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
	(&ModuleInfluencer{}).Init()
	os.Exit(m.Run())
}

func TestCreateInfluencer(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, CreateInfluencer, InfluencerCreateReq{
		Name:           "达人甲",
		FollowerCount:  120000,
		EngagementRate: 4.5,
	})
	test.NoError(t, resp)

	var created model.Influencer
	test.DecodeData(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, 120000, created.FollowerCount)
	require.Equal(t, 4.5, created.EngagementRate)
}

func TestCreateInfluencerRejectsNegativeValues(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, CreateInfluencer, InfluencerCreateReq{
		Name:          "负粉丝",
		FollowerCount: -1,
	})
	test.CodeEqual(t, response.ErrInvalidRequest, resp)

	resp = test.DoRequest(t, CreateInfluencer, InfluencerCreateReq{
		Name:           "负互动",
		EngagementRate: -0.5,
	})
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}

func TestListInfluencersOrderedByFollowers(t *testing.T) {
	test.SetupDB(t)

	for _, inf := range []model.Influencer{
		{Name: "小号", FollowerCount: 100},
		{Name: "大号", FollowerCount: 500000},
		{Name: "中号", FollowerCount: 8000},
	} {
		require.NoError(t, database.DB.Create(&inf).Error)
	}

	resp := test.DoRequest(t, ListInfluencers, nil)
	test.NoError(t, resp)

	var list []model.Influencer
	test.DecodeData(t, resp, &list)
	require.Len(t, list, 3)
	require.Equal(t, "大号", list[0].Name)
	require.Equal(t, "中号", list[1].Name)
	require.Equal(t, "小号", list[2].Name)
}

func TestGetInfluencerNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, GetInfluencer, nil, test.WithParam("id", "99999"))
	test.CodeEqual(t, response.ErrNotFound, resp)

	resp = test.DoRequest(t, GetInfluencer, nil, test.WithParam("id", "abc"))
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}

func TestListByCampaign(t *testing.T) {
	test.SetupDB(t)

	owner := model.User{Email: "owner@example.com", Password: tools.PasswordEncrypt("password123"), NickName: "所有者"}
	require.NoError(t, database.DB.Create(&owner).Error)
	campaign := model.Campaign{Title: "联名活动", UserID: owner.ID}
	require.NoError(t, database.DB.Create(&campaign).Error)

	assigned := model.Influencer{Name: "已分配", FollowerCount: 1000, EngagementRate: 2.5}
	require.NoError(t, database.DB.Create(&assigned).Error)
	outsider := model.Influencer{Name: "未分配", FollowerCount: 9000}
	require.NoError(t, database.DB.Create(&outsider).Error)
	require.NoError(t, database.DB.Create(&model.CampaignInfluencer{
		CampaignID:   campaign.ID,
		InfluencerID: assigned.ID,
	}).Error)

	resp := test.DoRequest(t, ListByCampaign, nil,
		test.WithParam("id", tools.UintToString(campaign.ID)))
	test.NoError(t, resp)

	var rows []CampaignInfluencerRow
	test.DecodeData(t, resp, &rows)
	require.Len(t, rows, 1)
	require.Equal(t, assigned.ID, rows[0].ID)
	require.Equal(t, "已分配", rows[0].Name)
	require.False(t, rows[0].AssignedAt.IsZero())

	// 没有任何分配的活动返回空列表
	resp = test.DoRequest(t, ListByCampaign, nil, test.WithParam("id", "99999"))
	test.NoError(t, resp)
	var empty []CampaignInfluencerRow
	test.DecodeData(t, resp, &empty)
	require.Len(t, empty, 0)
}
