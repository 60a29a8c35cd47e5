package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubhouse/internal/ports/input"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	out, err := h.registrations.Register(c.Request.Context(), input.Register{
		EventID:  c.Param("id"),
		Phone:    req.Phone,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	status, key := http.StatusCreated, "registration.admitted"
	if out.AlreadyRegistered {
		status, key = http.StatusOK, "registration.already_registered"
	}
	h.ok(c, status, key, toRegistrationResponse(out), map[string]any{"Event": out.Event.Name})
}

func (h *Handler) verifyPhone(c *gin.Context) {
	var req verifyPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	check, err := h.customers.VerifyPhone(c.Request.Context(), req.Phone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !check.Exists {
		h.ok(c, http.StatusOK, "registration.phone_unknown", phoneCheckResponse{}, nil)
		return
	}
	customer := toCustomerResponse(check.Customer)
	h.ok(c, http.StatusOK, "registration.phone_known", phoneCheckResponse{Exists: true, Customer: &customer},
		map[string]any{"Name": check.Customer.Name})
}
