package service

import (
	"errors"
	"fmt"
)

// 基础错误类别，具体错误通过 errors.Is 归类
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
)

// ValidationError 字段级校验错误，归类为 ErrValidation
type ValidationError struct {
	Key  string
	Args []interface{}
}

func (e *ValidationError) Error() string {
	if len(e.Args) == 0 {
		return e.Key
	}
	return fmt.Sprintf("%s %v", e.Key, e.Args)
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(key string, args ...interface{}) *ValidationError {
	return &ValidationError{Key: key, Args: args}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error     { return &kindError{msg: msg, kind: ErrNotFound} }
func unauthorized(msg string) error { return &kindError{msg: msg, kind: ErrUnauthenticated} }
func conflict(msg string) error     { return &kindError{msg: msg, kind: ErrConflict} }

// 资源不存在
var (
	ErrProductNotFound  = notFound("product not found")
	ErrCategoryNotFound = notFound("category not found")
	ErrCartItemNotFound = notFound("cart item not found")
	ErrAddressNotFound  = notFound("address not found")
	ErrOrderNotFound    = notFound("order not found")
	ErrUserNotFound     = notFound("user not found")
	ErrAdminNotFound    = notFound("admin not found")
)

// 认证失败
var (
	ErrInvalidCredentials = unauthorized("invalid credentials")
	ErrInvalidToken       = unauthorized("invalid token")
	ErrUserDisabled       = unauthorized("user disabled")
)

// 校验失败
var (
	ErrAddressInvalid     = newValidationError("error.address_invalid", StreetAddressMaxLength, AddressFieldMaxLength)
	ErrCartEmpty          = newValidationError("error.cart_empty")
	ErrWeakPassword       = newValidationError("error.password_weak")
	ErrPasswordMismatch   = newValidationError("error.password_mismatch")
	ErrInvalidPassword    = newValidationError("error.password_old_wrong")
	ErrUsernameInvalid    = newValidationError("error.username_invalid")
	ErrUsernameExists     = newValidationError("error.username_exists")
	ErrInvalidEmail       = newValidationError("error.email_invalid")
	ErrEmailExists        = newValidationError("error.email_exists")
	ErrCaptchaRequired    = newValidationError("error.captcha_required")
	ErrCaptchaInvalid     = newValidationError("error.captcha_invalid")
	ErrSlugExists         = newValidationError("error.slug_exists")
	ErrSKUExists          = newValidationError("error.sku_exists")
	ErrCategoryInvalid    = newValidationError("error.category_invalid")
	ErrProductInvalid     = newValidationError("error.product_invalid")
	ErrPriceInvalid       = newValidationError("error.price_invalid")
	ErrOrderStatusInvalid = newValidationError("error.order_status")
	ErrUserStatusInvalid  = newValidationError("error.user_status")
	ErrRoleInvalid        = newValidationError("error.role_invalid")
	ErrPolicyInvalid      = newValidationError("error.policy_invalid")
	ErrCaptchaDisabled    = newValidationError("error.captcha_disabled")
)

// 引用冲突
var (
	ErrCategoryInUse = conflict("category in use")
	ErrProductInUse  = conflict("product in use")
)

// 基础设施错误
var (
	ErrCaptchaConfigInvalid      = errors.New("captcha config invalid")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)

// ValidationKey 取出校验错误的国际化键和参数
func ValidationKey(err error) (string, []interface{}, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Key, verr.Args, true
	}
	var perr passwordPolicyError
	if errors.As(err, &perr) {
		return perr.Key(), perr.Args(), true
	}
	return "", nil, false
}
