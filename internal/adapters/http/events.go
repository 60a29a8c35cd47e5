package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
)

type listQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=upcoming ongoing past"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (h *Handler) listEvents(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	now := h.clock.Now()

	if q.Status == string(entities.PhaseOngoing) {
		events, err := h.events.ListOngoing(ctx)
		if err != nil {
			h.writeError(c, err)
			return
		}
		h.ok(c, http.StatusOK, "", eventPageResponse{Events: toEventResponses(events, now)}, nil)
		return
	}

	list := h.events.ListUpcoming
	if q.Status == string(entities.PhasePast) {
		list = h.events.ListPast
	}
	page, err := list(ctx, q.Page, q.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", eventPageResponse{
		Events:     toEventResponses(page.Events, now),
		Pagination: &pagination{Page: page.Page, Limit: page.Limit, HasMore: page.HasMore},
	}, nil)
}

func (h *Handler) categorizedEvents(c *gin.Context) {
	all, err := h.events.Categorized(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	now := h.clock.Now()
	h.ok(c, http.StatusOK, "", categorizedResponse{
		Upcoming: toEventResponses(all.Upcoming, now),
		Ongoing:  toEventResponses(all.Ongoing, now),
		Past:     toEventResponses(all.Past, now),
		Total:    all.Total(),
	}, nil)
}

func (h *Handler) nextEvent(c *gin.Context) {
	event, err := h.events.NextEvent(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if event == nil {
		h.ok(c, http.StatusOK, "event.none_upcoming", nil, nil)
		return
	}
	h.ok(c, http.StatusOK, "", toEventResponse(event, h.clock.Now()), nil)
}

func (h *Handler) getEvent(c *gin.Context) {
	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", toEventResponse(event, h.clock.Now()), nil)
}

func (h *Handler) adminListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", toEventResponses(events, h.clock.Now()), nil)
}

func (h *Handler) adminGetEvent(c *gin.Context) {
	res, err := h.events.GetEventWithAttendees(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", adminEventResponse{
		eventResponse: toEventResponse(res.Event, h.clock.Now()),
		Attendees:     toCustomerResponses(res.Attendees),
	}, nil)
}

func (h *Handler) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	event, err := h.events.CreateEvent(c.Request.Context(), input.CreateEvent{
		Name:              req.Name,
		Description:       req.Description,
		Images:            req.Images,
		Capacity:          req.Capacity,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		Password:          req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusCreated, "event.created", toEventResponse(event, h.clock.Now()), nil)
}

func (h *Handler) updateEvent(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	event, err := h.events.UpdateEvent(c.Request.Context(), c.Param("id"), req.command())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "event.updated", toEventResponse(event, h.clock.Now()), nil)
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "event.deleted", nil, nil)
}
