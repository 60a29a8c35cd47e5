package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubhouse/internal/ports/input"
)

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "", toCustomerResponses(customers), nil)
}

func (h *Handler) getCustomer(c *gin.Context) {
	detail, err := h.customers.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	events := make([]eventSummary, len(detail.AttendedEvents))
	for i := range detail.AttendedEvents {
		events[i] = toEventSummary(&detail.AttendedEvents[i])
	}
	h.ok(c, http.StatusOK, "", customerDetailResponse{
		customerResponse: toCustomerResponse(detail.Customer),
		AttendedEvents:   events,
	}, nil)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	customer, err := h.customers.CreateCustomer(c.Request.Context(), input.CreateCustomer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusCreated, "customer.created", toCustomerResponse(customer), nil)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	customer, err := h.customers.UpdateCustomer(c.Request.Context(), c.Param("id"), input.UpdateCustomer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "customer.updated", toCustomerResponse(customer), nil)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	if err := h.customers.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	h.ok(c, http.StatusOK, "customer.deleted", nil, nil)
}
