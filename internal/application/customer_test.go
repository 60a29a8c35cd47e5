package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhouse/internal/domain"
	"clubhouse/internal/ports/input"
)

func ptr[T any](v T) *T { return &v }

func TestCustomerService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.customers.CreateCustomer(ctx, input.CreateCustomer{Name: "  Asha ", Phone: " 1111111111", Email: " Asha@Example.COM "})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Asha", c.Name)
	assert.Equal(t, "1111111111", c.Phone)
	assert.Equal(t, "asha@example.com", c.Email)

	tests := []struct {
		name string
		cmd  input.CreateCustomer
		want error
	}{
		{"duplicate phone", input.CreateCustomer{Name: "B", Phone: "1111111111", Email: "b@example.com"}, domain.ErrPhoneTaken},
		{"duplicate email any case", input.CreateCustomer{Name: "B", Phone: "2222222222", Email: "ASHA@example.com"}, domain.ErrEmailTaken},
		{"short phone", input.CreateCustomer{Name: "B", Phone: "222222222", Email: "b@example.com"}, domain.ErrPhoneInvalid},
		{"letters in phone", input.CreateCustomer{Name: "B", Phone: "22222a2222", Email: "b@example.com"}, domain.ErrPhoneInvalid},
		{"bad email", input.CreateCustomer{Name: "B", Phone: "2222222222", Email: "not-an-email"}, domain.ErrEmailInvalid},
		{"missing name", input.CreateCustomer{Name: " ", Phone: "2222222222", Email: "b@example.com"}, domain.ErrNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.customers.CreateCustomer(ctx, tt.cmd)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustomerService_Lookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	c, err := f.customers.CreateCustomer(ctx, input.CreateCustomer{Name: "Asha", Phone: "1111111111", Email: "asha@example.com"})
	require.NoError(t, err)

	byPhone, err := f.customers.FindByPhone(ctx, "1111111111")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byPhone.ID)

	byEmail, err := f.customers.FindByEmail(ctx, "ASHA@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	_, err = f.customers.FindByPhone(ctx, "9999999999")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	a, err := f.customers.CreateCustomer(ctx, input.CreateCustomer{Name: "A", Phone: "1111111111", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = f.customers.CreateCustomer(ctx, input.CreateCustomer{Name: "B", Phone: "2222222222", Email: "b@example.com"})
	require.NoError(t, err)

	updated, err := f.customers.UpdateCustomer(ctx, a.ID, input.UpdateCustomer{Name: ptr("Alice"), Email: ptr("a@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "1111111111", updated.Phone)

	_, err = f.customers.UpdateCustomer(ctx, a.ID, input.UpdateCustomer{Phone: ptr("2222222222")})
	assert.ErrorIs(t, err, domain.ErrPhoneTaken)

	_, err = f.customers.UpdateCustomer(ctx, a.ID, input.UpdateCustomer{Email: ptr("B@example.com")})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = f.customers.UpdateCustomer(ctx, "6f1c2d3e-0000-4000-8000-000000000000", input.UpdateCustomer{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_DeleteLeavesDanglingAttendee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	event := f.openEvent(t, 5, "")
	out, err := f.register.Register(ctx, input.Register{EventID: event.ID, Phone: "1111111111", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	detail, err := f.customers.GetCustomer(ctx, out.Customer.ID)
	require.NoError(t, err)
	require.Len(t, detail.AttendedEvents, 1)
	assert.Equal(t, event.ID, detail.AttendedEvents[0].ID)

	require.NoError(t, f.customers.DeleteCustomer(ctx, out.Customer.ID))
	assert.ErrorIs(t, f.customers.DeleteCustomer(ctx, out.Customer.ID), domain.ErrCustomerNotFound)

	withAttendees, err := f.events.GetEventWithAttendees(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{out.Customer.ID}, withAttendees.Event.Attendees)
	assert.Empty(t, withAttendees.Attendees)
}

func TestCustomerService_VerifyPhone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.customers.CreateCustomer(ctx, input.CreateCustomer{Name: "A", Phone: "1111111111", Email: "a@example.com"})
	require.NoError(t, err)

	known, err := f.customers.VerifyPhone(ctx, "1111111111")
	require.NoError(t, err)
	assert.True(t, known.Exists)
	assert.Equal(t, "A", known.Customer.Name)

	unknown, err := f.customers.VerifyPhone(ctx, "3333333333")
	require.NoError(t, err)
	assert.False(t, unknown.Exists)
	assert.Nil(t, unknown.Customer)

	_, err = f.customers.VerifyPhone(ctx, "123")
	assert.ErrorIs(t, err, domain.ErrPhoneInvalid)
}
