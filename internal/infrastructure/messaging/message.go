package messaging

import (
	"encoding/json"
	"errors"
	"time"

	"clubhouse/internal/ports/output"
)

// admittedMessage is the JSON body of registration.admitted.
type admittedMessage struct {
	EventID       string    `json:"eventId"`
	EventName     string    `json:"eventName"`
	EventStart    time.Time `json:"eventStart"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	AttendeeCount int       `json:"attendeeCount"`
	Capacity      int       `json:"capacity"`
	AdmittedAt    time.Time `json:"admittedAt"`
}

func fromAdmitted(m output.RegistrationAdmitted) admittedMessage {
	return admittedMessage(m)
}

func decodeAdmitted(body []byte) (output.RegistrationAdmitted, error) {
	var m admittedMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return output.RegistrationAdmitted{}, err
	}
	if m.EventID == "" || m.CustomerID == "" {
		return output.RegistrationAdmitted{}, errors.New("message without event or customer id")
	}
	return output.RegistrationAdmitted(m), nil
}
