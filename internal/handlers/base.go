package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
)

// OK writes the storefront success shape, merging extra fields in.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes a success:false body with HTTP 200. Validation and
// domain outcomes are not transport errors.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// RespondError maps a service error onto the JSON contract. Expected
// domain outcomes keep their user-facing message; anything else is a
// transient server fault that must not leak detail.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	if apperrors.IsDomain(err) {
		Fail(c, userMessage(err))
		return
	}
	logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong",
	})
}

func userMessage(err error) string {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return ve.Msg
	}
	for _, sentinel := range []error{
		apperrors.ErrAlreadyVoted,
		apperrors.ErrPollClosed,
		apperrors.ErrInvalidOption,
		apperrors.ErrThreadClosed,
		apperrors.ErrNotFound,
		apperrors.ErrAnonymousOff,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Something went wrong"
}
