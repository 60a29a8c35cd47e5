package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) happyHourStatus(c *gin.Context) {
	st, err := h.happyHours.Status(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !st.Exists {
		h.ok(c, http.StatusOK, "", happyHourStatusResponse{
			Status: h.translator.T(locale(c), "happy_hour.none", nil),
		}, nil)
		return
	}
	statusKey := "happy_hour.inactive"
	if st.IsLive {
		statusKey = "happy_hour.live"
	}
	h.ok(c, http.StatusOK, "", happyHourStatusResponse{
		Exists:    true,
		IsLive:    st.IsLive,
		StartTime: st.HappyHour.StartTime,
		EndTime:   st.HappyHour.EndTime,
		Image:     st.HappyHour.Image,
		TimeRange: st.HappyHour.TimeRange(),
		Status:    h.translator.T(locale(c), statusKey, nil),
	}, nil)
}

func (h *Handler) getHappyHour(c *gin.Context) {
	hh, err := h.happyHours.GetHappyHour(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", toHappyHourResponse(hh), nil)
}

func (h *Handler) createHappyHour(c *gin.Context) {
	var req happyHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	hh, err := h.happyHours.CreateHappyHour(c.Request.Context(), req.fields())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusCreated, "happy_hour.created", toHappyHourResponse(hh), nil)
}

func (h *Handler) updateHappyHour(c *gin.Context) {
	var req happyHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	hh, err := h.happyHours.UpdateHappyHour(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "happy_hour.updated", toHappyHourResponse(hh), nil)
}
