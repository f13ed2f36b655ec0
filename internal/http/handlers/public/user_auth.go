package public

import (
	"time"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Username        string                       `json:"username" binding:"required"`
	Email           string                       `json:"email" binding:"required"`
	Password        string                       `json:"password" binding:"required"`
	PasswordConfirm string                       `json:"password_confirm" binding:"required"`
	CaptchaPayload  shared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserLoginRequest 登录请求，username 字段可填用户名或邮箱
type UserLoginRequest struct {
	Account        string                       `json:"username" binding:"required"`
	Password       string                       `json:"password" binding:"required"`
	CaptchaPayload shared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		respondWithMappedError(c, err, "error.register_failed")
		return
	}

	response.Success(c, userTokenPayload(user, token, expiresAt))
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(c.Request.Context(), req.Account, req.Password)
	if err != nil {
		respondWithMappedError(c, err, "error.login_failed", loginErrorRules...)
		return
	}

	response.Success(c, userTokenPayload(user, token, expiresAt))
}

// GetProfile 个人中心：账号、地址簿、最近订单
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	profile, err := h.ProfileService.Get(uid)
	if err != nil {
		respondWithMappedError(c, err, "error.profile_failed")
		return
	}
	response.Success(c, profile)
}

// ChangePassword 修改密码，成功后旧 Token 全部失效
func (h *Handler) ChangePassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword, req.NewPasswordConfirm); err != nil {
		respondWithMappedError(c, err, "error.password_failed", passwordErrorRules...)
		return
	}
	response.Success(c, gin.H{"changed": true})
}

func userTokenPayload(user *models.User, token string, expiresAt time.Time) gin.H {
	return gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	}
}
