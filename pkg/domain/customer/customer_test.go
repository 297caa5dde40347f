package customer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/identity"
)

var dob = time.Date(1990, 3, 21, 0, 0, 0, 0, time.UTC)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.New("Sara", "Ahmadi", "0499370899", "Sara.Ahmadi@Example.com", "0912-123-4567", dob)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newCustomer(t)
	assert.NotEqual(t, "", c.ID().String())
	assert.Equal(t, customer.StatusActive, c.Status())
	assert.Equal(t, "0499370899", c.NationalCode().String())
	assert.Equal(t, "sara.ahmadi@example.com", c.Email().String())
	assert.Equal(t, "09121234567", c.Phone().String())
	assert.Equal(t, "Sara Ahmadi", c.FullName())
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		last    string
		code    string
		email   string
		phone   string
		wantErr error
	}{
		{"missing first name", "", "Ahmadi", "0499370899", "a@example.com", "09121234567", customer.ErrFirstNameRequired},
		{"missing last name", "Sara", "", "0499370899", "a@example.com", "09121234567", customer.ErrLastNameRequired},
		{"bad national code", "Sara", "Ahmadi", "1111111111", "a@example.com", "09121234567", identity.ErrNationalCodeRepeated},
		{"bad email", "Sara", "Ahmadi", "0499370899", "not-an-email", "09121234567", identity.ErrEmailMalformed},
		{"bad phone", "Sara", "Ahmadi", "0499370899", "a@example.com", "12345", identity.ErrPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := customer.New(tt.first, tt.last, tt.code, tt.email, tt.phone, dob)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateInfo(t *testing.T) {
	c := newCustomer(t)

	err := c.UpdateInfo("Zahra", "Karimi", "ZAHRA@EXAMPLE.COM", "0211234567")
	require.NoError(t, err)
	assert.Equal(t, "Zahra", c.FirstName())
	assert.Equal(t, "Karimi", c.LastName())
	assert.Equal(t, "zahra@example.com", c.Email().String())
	assert.Equal(t, "0211234567", c.Phone().String())

	t.Run("invalid email leaves customer unchanged", func(t *testing.T) {
		err := c.UpdateInfo("X", "Y", "broken", "09121234567")
		require.Error(t, err)
		assert.Equal(t, "Zahra", c.FirstName())
		assert.Equal(t, "zahra@example.com", c.Email().String())
	})
}

func TestLifecycle(t *testing.T) {
	c := newCustomer(t)
	assert.True(t, c.IsActive())

	c.Deactivate()
	assert.Equal(t, customer.StatusInactive, c.Status())
	assert.False(t, c.IsActive())

	c.Activate()
	assert.Equal(t, customer.StatusActive, c.Status())

	c.Suspend()
	assert.Equal(t, customer.StatusSuspended, c.Status())
}
