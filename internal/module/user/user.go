package user

import (
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"campaign-manager/internal/model"
	"campaign-manager/tools"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"` // 邮箱，唯一标识用户
	Password string `json:"password" binding:"required"`    // 密码
}

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	NickName string `json:"nick_name" binding:"required"`
}

// validatePasswordStrength 验证密码强度
func validatePasswordStrength(password string) error {
	if password == "" {
		return errors.New("密码不能为空")
	}
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}

	hasLetter := false
	hasDigit := false

	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		}
	}

	if !hasLetter {
		return errors.New("密码必须包含至少一个字母")
	}
	if !hasDigit {
		return errors.New("密码必须包含至少一个数字")
	}

	return nil
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证密码强度
	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	// 检查邮箱是否已注册
	var existingUser model.User
	err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error
	if err == nil {
		log.Warn("用户已存在", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: tools.PasswordEncrypt(req.Password),
		NickName: req.NickName,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		// 并发注册同一邮箱时以唯一索引为准
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
			return
		}
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功",
		"user_id", user.ID,
		"email", user.Email)

	response.Success(c)
}

// Login 处理用户登录请求，成功后签发访问令牌
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "email", req.Email)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "email", req.Email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功",
		"user_id", user.ID,
		"email", user.Email)

	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
		}),
		"user_id":   user.ID,
		"email":     user.Email,
		"nick_name": user.NickName,
	})
}

// Logout 注销当前令牌，令牌在剩余有效期内进入注销名单
func Logout(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	if err := jwt.Revoke(c.Request.Context(), payload); err != nil {
		log.Error("注销令牌失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户登出", "user_id", payload.UserID)
	response.Success(c)
}

// GetMe 返回当前登录用户的资料
func GetMe(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}

// ChangePasswordReq 定义修改密码请求的结构体
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"` // 旧密码，用于验证
	NewPassword string `json:"new_password" binding:"required"` // 新密码，需加密后保存
}

// ChangePassword 处理用户修改密码请求，验证旧密码后更新
func ChangePassword(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定修改密码请求失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("新密码强度验证失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("旧密码错误", "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	if err := database.DB.Model(&user).Update("password", tools.PasswordEncrypt(req.NewPassword)).Error; err != nil {
		log.Error("更新密码失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户修改密码成功", "user_id", user.ID)
	response.Success(c)
}
