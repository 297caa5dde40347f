package customer_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/novinbank/ledger/internal/fixtures/mocks"
	"github.com/novinbank/ledger/pkg/domain"
	domaincustomer "github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/identity"
	customersvc "github.com/novinbank/ledger/pkg/service/customer"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

var validCmd = customersvc.CreateCommand{
	FirstName:    "Sara",
	LastName:     "Ahmadi",
	NationalCode: "0499370899",
	Email:        "sara@example.com",
	Phone:        "09121234567",
	DateOfBirth:  time.Date(1990, 3, 21, 0, 0, 0, 0, time.UTC),
}

func TestCreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uow := mocks.NewUnitOfWork()
		uow.Customers.On("NationalCodeExists", mock.Anything, "0499370899").Return(false, nil).Once()
		uow.Customers.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		c, err := customersvc.NewService(uow, slog.Default()).CreateCustomer(context.Background(), validCmd)
		require.NoError(t, err)
		assert.Equal(t, domaincustomer.StatusActive, c.Status())
		assert.Equal(t, "0499370899", c.NationalCode().String())
		uow.AssertExpectations(t)
	})

	t.Run("duplicate national code", func(t *testing.T) {
		uow := mocks.NewUnitOfWork()
		uow.Customers.On("NationalCodeExists", mock.Anything, "0499370899").Return(true, nil).Once()

		_, err := customersvc.NewService(uow, slog.Default()).CreateCustomer(context.Background(), validCmd)
		assert.ErrorIs(t, err, domaincustomer.ErrNationalCodeTaken)
		assert.ErrorIs(t, err, domain.ErrValidation)
		uow.Customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid national code never reaches the store", func(t *testing.T) {
		uow := mocks.NewUnitOfWork()
		cmd := validCmd
		cmd.NationalCode = "1111111111"

		_, err := customersvc.NewService(uow, slog.Default()).CreateCustomer(context.Background(), cmd)
		assert.ErrorIs(t, err, identity.ErrNationalCodeRepeated)
		uow.Customers.AssertNotCalled(t, "NationalCodeExists", mock.Anything, mock.Anything)
	})
}

func TestUpdateCustomer(t *testing.T) {
	existing, err := domaincustomer.New(
		validCmd.FirstName, validCmd.LastName, validCmd.NationalCode,
		validCmd.Email, validCmd.Phone, validCmd.DateOfBirth,
	)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		uow := mocks.NewUnitOfWork()
		uow.Customers.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
		uow.Customers.On("Update", mock.Anything, existing).Return(nil).Once()

		c, err := customersvc.NewService(uow, slog.Default()).UpdateCustomer(context.Background(), existing.ID(), customersvc.UpdateCommand{
			FirstName: "Zahra",
			LastName:  "Karimi",
			Email:     "zahra@example.com",
			Phone:     "0211234567",
		})
		require.NoError(t, err)
		assert.Equal(t, "Zahra", c.FirstName())
	})

	t.Run("unknown customer", func(t *testing.T) {
		uow := mocks.NewUnitOfWork()
		id := uuid.New()
		uow.Customers.On("Get", mock.Anything, id).Return(nil, domaincustomer.ErrCustomerNotFound).Once()

		_, err := customersvc.NewService(uow, slog.Default()).UpdateCustomer(context.Background(), id, customersvc.UpdateCommand{
			Email: "a@example.com",
			Phone: "09121234567",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLifecycleToggles(t *testing.T) {
	existing, err := domaincustomer.New(
		validCmd.FirstName, validCmd.LastName, validCmd.NationalCode,
		validCmd.Email, validCmd.Phone, validCmd.DateOfBirth,
	)
	require.NoError(t, err)

	uow := mocks.NewUnitOfWork()
	uow.Customers.On("Get", mock.Anything, existing.ID()).Return(existing, nil)
	uow.Customers.On("Update", mock.Anything, existing).Return(nil)

	svc := customersvc.NewService(uow, slog.Default())
	ctx := context.Background()

	require.NoError(t, svc.DeactivateCustomer(ctx, existing.ID()))
	assert.Equal(t, domaincustomer.StatusInactive, existing.Status())

	require.NoError(t, svc.ActivateCustomer(ctx, existing.ID()))
	assert.Equal(t, domaincustomer.StatusActive, existing.Status())

	require.NoError(t, svc.SuspendCustomer(ctx, existing.ID()))
	assert.Equal(t, domaincustomer.StatusSuspended, existing.Status())
}
