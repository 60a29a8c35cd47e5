package domain

import "errors"

// Kind classifies a domain error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindWindowClosed
	KindCapacityExceeded
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindWindowClosed:
		return "window_closed"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	default:
		return "internal"
	}
}

// Error is a business-rule failure. Code is stable and doubles as the i18n message id suffix.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

// Domain errors.
var (
	ErrInvalidID          = newError(KindValidation, "invalid_id", "invalid id")
	ErrNameRequired       = newError(KindValidation, "name_required", "name is required")
	ErrPhoneInvalid       = newError(KindValidation, "phone_invalid", "phone number must be exactly 10 digits")
	ErrEmailInvalid       = newError(KindValidation, "email_invalid", "invalid email address")
	ErrCustomerDetails    = newError(KindValidation, "customer_details_required", "name and email are required for new customers")
	ErrDescriptionMissing = newError(KindValidation, "description_required", "description is required")
	ErrInvalidCapacity    = newError(KindValidation, "capacity_invalid", "capacity must be a positive integer")
	ErrScheduleMissing    = newError(KindValidation, "schedule_required", "start, end and registration times are required")
	ErrEventTimeOrder     = newError(KindValidation, "event_time_order", "start time must be before end time")
	ErrRegistrationOrder  = newError(KindValidation, "registration_time_order", "registration start must be before registration end")
	ErrCannotReduceSlots  = newError(KindValidation, "capacity_below_attendees", "capacity cannot be lower than the number of attendees")
	ErrInvalidImageURL    = newError(KindValidation, "image_invalid", "image must be a valid URL")
	ErrInvalidClockTime   = newError(KindValidation, "clock_time_invalid", "time must be in HH:mm format")
	ErrClockTimeOrder     = newError(KindValidation, "clock_time_order", "end time must be after start time")
	ErrPasswordTooShort   = newError(KindValidation, "password_too_short", "password must be at least 8 characters")
	ErrCredentialsMissing = newError(KindValidation, "credentials_required", "email and password are required")

	ErrEventNotFound     = newError(KindNotFound, "event_not_found", "event not found")
	ErrCustomerNotFound  = newError(KindNotFound, "customer_not_found", "customer not found")
	ErrHappyHourNotFound = newError(KindNotFound, "happy_hour_not_found", "happy hours not found")
	ErrAdminNotFound     = newError(KindNotFound, "admin_not_found", "admin not found")

	ErrPhoneTaken      = newError(KindConflict, "phone_taken", "phone number already belongs to another customer")
	ErrEmailTaken      = newError(KindConflict, "email_taken", "email already belongs to another customer")
	ErrAdminExists     = newError(KindConflict, "admin_exists", "admin with this email already exists")
	ErrHappyHourExists = newError(KindConflict, "happy_hour_exists", "happy hours already exist, update the existing one")

	ErrEventPasswordMismatch = newError(KindUnauthorized, "event_password_mismatch", "incorrect or missing event password")
	ErrInvalidCredentials    = newError(KindUnauthorized, "invalid_credentials", "invalid email or password")
	ErrInvalidToken          = newError(KindUnauthorized, "invalid_token", "missing or invalid token")

	ErrRegistrationClosed = newError(KindWindowClosed, "registration_closed", "registration is not open for this event")
	ErrEventFull          = newError(KindCapacityExceeded, "event_full", "event is full")
)

// KindOf reports the kind of err; errors that are not domain errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Code returns the domain error code carried by err, or "" for non-domain errors.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
