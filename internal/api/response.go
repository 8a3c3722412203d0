package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/questforge/tabletop-server/internal/errors"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse 成功响应
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// codeNames 错误码对应的对外标识
var codeNames = map[apperrors.ErrorCode]string{
	apperrors.ErrUnknown:           "INTERNAL_ERROR",
	apperrors.ErrInvalidParam:      "INVALID_PARAM",
	apperrors.ErrNotFound:          "NOT_FOUND",
	apperrors.ErrAlreadyExists:     "ALREADY_EXISTS",
	apperrors.ErrPermissionDenied:  "PERMISSION_DENIED",
	apperrors.ErrInvalidNotation:   "INVALID_NOTATION",
	apperrors.ErrDiceOutOfRange:    "DICE_OUT_OF_RANGE",
	apperrors.ErrUserNotFound:      "USER_NOT_FOUND",
	apperrors.ErrCharacterNotFound: "CHARACTER_NOT_FOUND",
	apperrors.ErrCampaignNotFound:  "CAMPAIGN_NOT_FOUND",
	apperrors.ErrOwnershipMismatch: "OWNERSHIP_MISMATCH",
	apperrors.ErrAuthentication:    "AUTHENTICATION_FAILED",
	apperrors.ErrAuthorization:     "AUTHORIZATION_FAILED",
	apperrors.ErrTokenExpired:      "TOKEN_EXPIRED",
	apperrors.ErrTokenInvalid:      "TOKEN_INVALID",
}

// respondError 按错误码映射HTTP状态码并输出错误响应
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		name, ok := codeNames[appErr.Code]
		if !ok {
			name = "INTERNAL_ERROR"
		}
		c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Code:    name,
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}

// respondBindError 请求体解析失败
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: "请求参数错误",
		Details: err.Error(),
	})
}
