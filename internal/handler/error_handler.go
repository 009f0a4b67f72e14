package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"match-service/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Service error",
				zap.String("code", appErr.Code),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			// driver messages stay in the log
			response.SendError(c, statusCode, appErr.Code, appErr.Message)
			return
		}
		logger.Debug("Request rejected",
			zap.String("code", appErr.Code),
			zap.String("details", appErr.Details),
		)
		response.SendErrorWithDetails(c, statusCode, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	logger.Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound, response.ErrCodeNotParticipant:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	case response.ErrCodeAlreadyExists,
		response.ErrCodeInvalidState,
		response.ErrCodeMatchFull,
		response.ErrCodeAlreadyJoined,
		response.ErrCodeAlreadyParticipant,
		response.ErrCodeDuplicateInvitation,
		response.ErrCodeAlreadyResolved:
		return http.StatusConflict
	case response.ErrCodeInvalidTransition:
		return http.StatusUnprocessableEntity
	case response.ErrCodeInvitationExpired:
		return http.StatusGone
	case response.ErrCodeTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
