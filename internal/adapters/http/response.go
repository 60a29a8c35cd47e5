package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"clubhouse/internal/domain"
)

const (
	codeInternal       = "internal"
	codeInvalidRequest = "invalid_request"
	codeRouteNotFound  = "route_not_found"
)

type envelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindWindowClosed, domain.KindCapacityExceeded:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func locale(c *gin.Context) string {
	return c.GetHeader("Accept-Language")
}

func (h *Handler) ok(c *gin.Context, status int, messageKey string, data any, tmpl map[string]any) {
	body := envelope{Success: true, Data: data}
	if messageKey != "" {
		body.Message = h.translator.T(locale(c), messageKey, tmpl)
	}
	c.JSON(status, body)
}

func (h *Handler) fail(c *gin.Context, status int, code string, tmpl map[string]any) {
	c.AbortWithStatusJSON(status, envelope{
		Error: &apiError{Code: code, Message: h.translator.T(locale(c), "error."+code, tmpl)},
	})
}

// writeError maps err to a status and a localized body. Internal errors are logged and never echoed.
func (h *Handler) writeError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		h.log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("request failed")
		h.fail(c, http.StatusInternalServerError, codeInternal, nil)
		return
	}
	h.fail(c, statusFor(kind), domain.Code(err), nil)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.fail(c, http.StatusBadRequest, codeInvalidRequest, map[string]any{"Detail": describe(err)})
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
	return "malformed body"
}
