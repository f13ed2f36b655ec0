package public

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// 购物车增减删时，商品/行不存在统一提示
var cartItemErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound, Key: "error.cart_item_not_found"},
}

// 结算时地址不属于当前用户按不存在处理
var checkoutErrorRules = []shared.MappedError{
	{Target: service.ErrAddressNotFound, Code: response.CodeNotFound, Key: "error.address_not_found"},
	{Target: service.ErrCartEmpty, Code: response.CodeBadRequest, Key: "error.cart_empty"},
}

var loginErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.login_invalid"},
	{Target: service.ErrUserDisabled, Code: response.CodeUnauthorized, Key: "error.user_disabled"},
}

var passwordErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.password_old_wrong"},
	{Target: service.ErrPasswordMismatch, Code: response.CodeBadRequest, Key: "error.password_mismatch"},
}

func respondWithMappedError(c *gin.Context, err error, fallbackKey string, rules ...shared.MappedError) {
	shared.RespondServiceError(c, err, fallbackKey, rules...)
}

// verifyCaptcha 校验场景验证码，失败时已写出响应
func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload shared.CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	if err := h.CaptchaService.Verify(scene, payload.ToServicePayload()); err != nil {
		respondWithMappedError(c, err, "error.captcha_failed")
		return false
	}
	return true
}
