package user

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"campaign-manager/test"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModuleUser{}).Init()
	os.Exit(m.Run())
}

func TestRegisterAndLogin(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, Register, RegisterReq{
		Email:    "alice@example.com",
		Password: "password123",
		NickName: "Alice",
	})
	test.NoError(t, resp)

	// 密码不落明文
	var user model.User
	require.NoError(t, database.DB.Where("email = ?", "alice@example.com").First(&user).Error)
	require.NotEqual(t, "password123", user.Password)

	resp = test.DoRequest(t, Login, LoginReq{
		Email:    "alice@example.com",
		Password: "password123",
	})
	test.NoError(t, resp)
	var data map[string]any
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data["token"])
	require.Equal(t, "Alice", data["nick_name"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	test.SetupDB(t)

	req := RegisterReq{Email: "alice@example.com", Password: "password123", NickName: "Alice"}
	test.NoError(t, test.DoRequest(t, Register, req))

	resp := test.DoRequest(t, Register, req)
	test.CodeEqual(t, response.ErrAlreadyExists, resp)
}

func TestRegisterWeakPassword(t *testing.T) {
	test.SetupDB(t)

	for _, password := range []string{"short1", "alllowercase", "12345678"} {
		resp := test.DoRequest(t, Register, RegisterReq{
			Email:    "weak@example.com",
			Password: password,
			NickName: "Weak",
		})
		test.CodeEqual(t, response.ErrInvalidRequest, resp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		Email: "alice@example.com", Password: "password123", NickName: "Alice",
	}))

	resp := test.DoRequest(t, Login, LoginReq{
		Email:    "alice@example.com",
		Password: "wrongpass1",
	})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.DoRequest(t, Login, LoginReq{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	test.CodeEqual(t, response.ErrNotFound, resp)
}

func TestChangePassword(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		Email: "alice@example.com", Password: "password123", NickName: "Alice",
	}))
	var user model.User
	require.NoError(t, database.DB.Where("email = ?", "alice@example.com").First(&user).Error)

	// 旧密码错误
	resp := test.DoRequest(t, ChangePassword, ChangePasswordReq{
		OldPassword: "wrongpass1",
		NewPassword: "newpassword1",
	}, test.AsUser(user.ID))
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.DoRequest(t, ChangePassword, ChangePasswordReq{
		OldPassword: "password123",
		NewPassword: "newpassword1",
	}, test.AsUser(user.ID))
	test.NoError(t, resp)

	// 新密码生效
	test.NoError(t, test.DoRequest(t, Login, LoginReq{
		Email: "alice@example.com", Password: "newpassword1",
	}))
	test.ErrorEqual(t, response.ErrInvalidPassword, test.DoRequest(t, Login, LoginReq{
		Email: "alice@example.com", Password: "password123",
	}))
}

func TestGetMe(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		Email: "alice@example.com", Password: "password123", NickName: "Alice",
	}))
	var user model.User
	require.NoError(t, database.DB.Where("email = ?", "alice@example.com").First(&user).Error)

	resp := test.DoRequest(t, GetMe, nil, test.AsUser(user.ID))
	test.NoError(t, resp)
	var me model.User
	test.DecodeData(t, resp, &me)
	require.Equal(t, user.Email, me.Email)
}
