package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhouse/internal/ports/output"
)

func TestAdmittedMessageWireFormat(t *testing.T) {
	at := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	msg := output.RegistrationAdmitted{
		EventID: "e1", EventName: "Retro Night", EventStart: at.Add(24 * time.Hour),
		CustomerID: "c1", CustomerName: "Asha",
		AttendeeCount: 3, Capacity: 10, AdmittedAt: at,
	}

	body, err := json.Marshal(fromAdmitted(msg))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "e1", raw["eventId"])
	assert.Equal(t, "Asha", raw["customerName"])
	assert.EqualValues(t, 3, raw["attendeeCount"])

	decoded, err := decodeAdmitted(body)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestDecodeAdmittedRejectsIncompleteMessages(t *testing.T) {
	_, err := decodeAdmitted([]byte(`{"eventId":"e1"}`))
	assert.Error(t, err)

	_, err = decodeAdmitted([]byte(`not json`))
	assert.Error(t, err)
}
