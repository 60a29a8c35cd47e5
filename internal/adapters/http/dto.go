package http

import (
	"time"

	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
)

type registerRequest struct {
	Phone    string `json:"phone" binding:"required,phone10"`
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"max=254"`
	Password string `json:"password"`
}

type verifyPhoneRequest struct {
	Phone string `json:"phone" binding:"required,phone10"`
}

type createEventRequest struct {
	Name              string    `json:"name" binding:"required,max=200"`
	Description       string    `json:"description" binding:"required"`
	Images            []string  `json:"images" binding:"omitempty,dive,url"`
	Capacity          int       `json:"capacity" binding:"required,gt=0"`
	StartTime         time.Time `json:"startTime" binding:"required"`
	EndTime           time.Time `json:"endTime" binding:"required"`
	RegistrationStart time.Time `json:"registrationStart" binding:"required"`
	RegistrationEnd   time.Time `json:"registrationEnd" binding:"required"`
	Password          string    `json:"password"`
}

type updateEventRequest struct {
	Name              *string    `json:"name" binding:"omitempty,max=200"`
	Description       *string    `json:"description"`
	Images            *[]string  `json:"images" binding:"omitempty,dive,url"`
	Capacity          *int       `json:"capacity" binding:"omitempty,gt=0"`
	StartTime         *time.Time `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
	RegistrationStart *time.Time `json:"registrationStart"`
	RegistrationEnd   *time.Time `json:"registrationEnd"`
	Password          *string    `json:"password"`
}

func (r updateEventRequest) command() input.UpdateEvent {
	return input.UpdateEvent{
		Name:              r.Name,
		Description:       r.Description,
		Images:            r.Images,
		Capacity:          r.Capacity,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		RegistrationStart: r.RegistrationStart,
		RegistrationEnd:   r.RegistrationEnd,
		Password:          r.Password,
	}
}

type createCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,phone10"`
	Email string `json:"email" binding:"required,email"`
}

type updateCustomerRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Phone *string `json:"phone" binding:"omitempty,phone10"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerAdminRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type happyHourRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Image     string `json:"image" binding:"required,url"`
}

func (r happyHourRequest) fields() input.HappyHourFields {
	return input.HappyHourFields{StartTime: r.StartTime, EndTime: r.EndTime, Image: r.Image}
}

// eventResponse is the public view. The password hash and attendee ids never leave the server.
type eventResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Images            []string       `json:"images"`
	Capacity          int            `json:"capacity"`
	StartTime         time.Time      `json:"startTime"`
	EndTime           time.Time      `json:"endTime"`
	RegistrationStart time.Time      `json:"registrationStart"`
	RegistrationEnd   time.Time      `json:"registrationEnd"`
	AttendeeCount     int            `json:"attendeeCount"`
	AvailableSpots    int            `json:"availableSpots"`
	IsFull            bool           `json:"isFull"`
	PasswordProtected bool           `json:"passwordProtected"`
	RegistrationOpen  bool           `json:"registrationOpen"`
	Status            entities.Phase `json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func toEventResponse(e *entities.Event, now time.Time) eventResponse {
	images := e.Images
	if images == nil {
		images = []string{}
	}
	return eventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		Images:            images,
		Capacity:          e.Capacity,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		RegistrationStart: e.RegistrationStart,
		RegistrationEnd:   e.RegistrationEnd,
		AttendeeCount:     len(e.Attendees),
		AvailableSpots:    e.AvailableSpots(),
		IsFull:            e.IsFull(),
		PasswordProtected: e.HasPassword(),
		RegistrationOpen:  e.RegistrationOpen(now),
		Status:            e.PhaseAt(now),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toEventResponses(events []entities.Event, now time.Time) []eventResponse {
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i], now)
	}
	return out
}

type adminEventResponse struct {
	eventResponse
	Attendees []customerResponse `json:"attendees"`
}

type eventSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func toEventSummary(e *entities.Event) eventSummary {
	return eventSummary{ID: e.ID, Name: e.Name, StartTime: e.StartTime, EndTime: e.EndTime}
}

type pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type eventPageResponse struct {
	Events     []eventResponse `json:"events"`
	Pagination *pagination     `json:"pagination,omitempty"`
}

type categorizedResponse struct {
	Upcoming []eventResponse `json:"upcoming"`
	Ongoing  []eventResponse `json:"ongoing"`
	Past     []eventResponse `json:"past"`
	Total    int             `json:"total"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCustomerResponse(c *entities.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(customers []entities.Customer) []customerResponse {
	out := make([]customerResponse, len(customers))
	for i := range customers {
		out[i] = toCustomerResponse(&customers[i])
	}
	return out
}

type customerDetailResponse struct {
	customerResponse
	AttendedEvents []eventSummary `json:"attendedEvents"`
}

type phoneCheckResponse struct {
	Exists   bool              `json:"exists"`
	Customer *customerResponse `json:"customer,omitempty"`
}

type registrationResponse struct {
	Customer          customerResponse `json:"customer"`
	Event             eventSummary     `json:"event"`
	AvailableSpots    int              `json:"availableSpots"`
	Admitted          bool             `json:"admitted"`
	AlreadyRegistered bool             `json:"alreadyRegistered"`
	RegisteredAt      time.Time        `json:"registeredAt"`
}

func toRegistrationResponse(out *input.RegistrationOutcome) registrationResponse {
	return registrationResponse{
		Customer:          toCustomerResponse(out.Customer),
		Event:             toEventSummary(out.Event),
		AvailableSpots:    out.Event.AvailableSpots(),
		Admitted:          out.Admitted,
		AlreadyRegistered: out.AlreadyRegistered,
		RegisteredAt:      out.RegisteredAt,
	}
}

type adminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAdminResponse(a *entities.Admin) adminResponse {
	return adminResponse{ID: a.ID, Name: a.Name, Email: a.Email, CreatedAt: a.CreatedAt}
}

type loginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     adminResponse `json:"admin"`
}

type happyHourResponse struct {
	ID        string    `json:"id"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Image     string    `json:"image"`
	TimeRange string    `json:"timeRange"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toHappyHourResponse(hh *entities.HappyHour) happyHourResponse {
	return happyHourResponse{
		ID:        hh.ID,
		StartTime: hh.StartTime,
		EndTime:   hh.EndTime,
		Image:     hh.Image,
		TimeRange: hh.TimeRange(),
		UpdatedAt: hh.UpdatedAt,
	}
}

type happyHourStatusResponse struct {
	Exists    bool   `json:"exists"`
	IsLive    bool   `json:"isLive"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Image     string `json:"image,omitempty"`
	TimeRange string `json:"timeRange,omitempty"`
	Status    string `json:"status"`
}
