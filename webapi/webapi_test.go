package webapi_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/novinbank/ledger/config"
	"github.com/novinbank/ledger/internal/fixtures/mocks"
	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/money"
	accountsvc "github.com/novinbank/ledger/pkg/service/account"
	customersvc "github.com/novinbank/ledger/pkg/service/customer"
	"github.com/novinbank/ledger/webapi"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestApp(uow *mocks.UnitOfWork) *fiber.App {
	logger := slog.Default()
	customerSvc := customersvc.NewService(uow, logger)
	accountSvc := accountsvc.NewService(uow, nil, nil, logger)
	return webapi.NewApp(customerSvc, accountSvc, &config.AppConfig{
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, Window: time.Minute},
	})
}

func testAccount(t *testing.T, id uuid.UUID) *account.Account {
	t.Helper()
	bal := money.NewFromData(decimal.NewFromInt(5000), currency.IRR)
	a, err := account.New().
		WithID(id).
		WithCustomerID(uuid.New()).
		WithNumber("1234567812345678").
		WithIBAN("IR123456789012345678901234").
		WithBalance(bal).
		Build()
	require.NoError(t, err)
	return a
}

func TestRootIsUp(t *testing.T) {
	app := newTestApp(mocks.NewUnitOfWork())

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateCustomerVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		setup      func(uow *mocks.UnitOfWork)
		wantStatus int
	}{
		{
			desc: "success",
			body: `{"first_name":"Sara","last_name":"Ahmadi","national_code":"0499370899","email":"sara@example.com","phone":"09123456789"}`,
			setup: func(uow *mocks.UnitOfWork) {
				uow.Customers.On("NationalCodeExists", mock.Anything, "0499370899").Return(false, nil)
				uow.Customers.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "invalid body",
			body:       `{"first_name":123}`,
			setup:      func(uow *mocks.UnitOfWork) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc: "bad national code",
			body: `{"first_name":"Sara","last_name":"Ahmadi","national_code":"1111111111","email":"sara@example.com","phone":"09123456789"}`,
			setup: func(uow *mocks.UnitOfWork) {
			},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc: "national code taken",
			body: `{"first_name":"Sara","last_name":"Ahmadi","national_code":"0499370899","email":"sara@example.com","phone":"09123456789"}`,
			setup: func(uow *mocks.UnitOfWork) {
				uow.Customers.On("NationalCodeExists", mock.Anything, "0499370899").Return(true, nil)
			},
			wantStatus: fiber.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			uow := mocks.NewUnitOfWork()
			tc.setup(uow)
			app := newTestApp(uow)

			req := httptest.NewRequest(fiber.MethodPost, "/customer", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			uow.AssertExpectations(t)
		})
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	id := uuid.New()
	uow.Customers.On("Get", mock.Anything, id).Return(nil, customer.ErrCustomerNotFound)
	app := newTestApp(uow)

	req := httptest.NewRequest(fiber.MethodGet, "/customer/"+id.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDepositVariants(t *testing.T) {
	accountID := uuid.New()
	testCases := []struct {
		desc       string
		target     string
		body       string
		setup      func(uow *mocks.UnitOfWork)
		wantStatus int
	}{
		{
			desc:   "success",
			target: "/account/" + accountID.String() + "/deposit",
			body:   `{"amount":700}`,
			setup: func(uow *mocks.UnitOfWork) {
				uow.Accounts.On("Get", mock.Anything, accountID).Return(testAccount(t, accountID), nil)
				uow.Accounts.On("Update", mock.Anything, mock.Anything).Return(nil)
				uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			desc:       "invalid account id",
			target:     "/account/not-a-uuid/deposit",
			body:       `{"amount":700}`,
			setup:      func(uow *mocks.UnitOfWork) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "zero amount rejected by validation",
			target:     "/account/" + accountID.String() + "/deposit",
			body:       `{"amount":0}`,
			setup:      func(uow *mocks.UnitOfWork) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:   "account not found",
			target: "/account/" + accountID.String() + "/deposit",
			body:   `{"amount":700}`,
			setup: func(uow *mocks.UnitOfWork) {
				uow.Accounts.On("Get", mock.Anything, accountID).Return(nil, account.ErrAccountNotFound)
			},
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			uow := mocks.NewUnitOfWork()
			tc.setup(uow)
			app := newTestApp(uow)

			req := httptest.NewRequest(fiber.MethodPost, tc.target, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			uow.AssertExpectations(t)
		})
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	accountID := uuid.New()
	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", mock.Anything, accountID).Return(testAccount(t, accountID), nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	app := newTestApp(uow)

	body := `{"amount":999999}`
	req := httptest.NewRequest(fiber.MethodPost, "/account/"+accountID.String()+"/withdraw", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	uow.AssertExpectations(t)
}

func TestTransferDomainFailureReported(t *testing.T) {
	sourceID := uuid.New()
	targetID := uuid.New()
	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", mock.Anything, sourceID).Return(testAccount(t, sourceID), nil)
	uow.Accounts.On("Get", mock.Anything, targetID).Return(testAccount(t, targetID), nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	app := newTestApp(uow)

	body := `{"target_account_id":"` + targetID.String() + `","amount":999999}`
	req := httptest.NewRequest(fiber.MethodPost, "/account/"+sourceID.String()+"/transfer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	uow.AssertExpectations(t)
}

func TestGetBalance(t *testing.T) {
	accountID := uuid.New()
	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", mock.Anything, accountID).Return(testAccount(t, accountID), nil)
	app := newTestApp(uow)

	req := httptest.NewRequest(fiber.MethodGet, "/account/"+accountID.String()+"/balance", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	uow.AssertExpectations(t)
}
