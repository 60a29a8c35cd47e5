package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubhouse/internal/ports/input"
)

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	res, err := h.admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "admin.logged_in", loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Admin:     toAdminResponse(res.Admin),
	}, nil)
}

func (h *Handler) registerAdmin(c *gin.Context) {
	var req registerAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	admin, err := h.admins.RegisterAdmin(c.Request.Context(), input.RegisterAdmin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if by := currentAdmin(c); by != nil {
		h.log.Info().Str("admin_id", admin.ID).Str("created_by", by.ID).Msg("admin registered")
	}
	h.ok(c, http.StatusCreated, "admin.created", toAdminResponse(admin), nil)
}
