// Package account exposes the account and transaction operations over HTTP.
package account

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	accountsvc "github.com/novinbank/ledger/pkg/service/account"
	"github.com/novinbank/ledger/webapi/common"
)

// Routes registers the account endpoints:
//
//   - POST /account                         : Open a new account.
//   - GET  /account/:id                     : Retrieve one account.
//   - GET  /account/:id/balance             : Retrieve the account balance.
//   - GET  /account/:id/transactions        : List transactions touching the account.
//   - GET  /customer/:id/accounts           : List a customer's accounts.
//   - POST /account/:id/deposit             : Deposit funds.
//   - POST /account/:id/withdraw            : Withdraw funds.
//   - POST /account/:id/transfer            : Transfer funds to another account.
//   - POST /account/:id/freeze              : Freeze the account.
//   - POST /account/:id/unfreeze            : Unfreeze the account.
//   - POST /account/:id/close               : Close the account.
//   - GET  /transaction/reference/:ref      : Look a transfer up by reference number.
//   - GET  /transactions                    : List transactions in a date range.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/account", Create(svc))
	app.Get("/account/:id", Get(svc))
	app.Get("/account/:id/balance", GetBalance(svc))
	app.Get("/account/:id/transactions", ListTransactions(svc))
	app.Get("/customer/:id/accounts", ListByCustomer(svc))
	app.Post("/account/:id/deposit", Deposit(svc))
	app.Post("/account/:id/withdraw", Withdraw(svc))
	app.Post("/account/:id/transfer", Transfer(svc))
	app.Post("/account/:id/freeze", transition(svc.FreezeAccount, "Account frozen"))
	app.Post("/account/:id/unfreeze", transition(svc.UnfreezeAccount, "Account unfrozen"))
	app.Post("/account/:id/close", transition(svc.CloseAccount, "Account closed"))
	app.Get("/transaction/reference/:ref", GetByReference(svc))
	app.Get("/transactions", ListByDateRange(svc))
}

// Create returns a handler that opens a new account for a customer.
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		customerID, err := uuid.Parse(input.CustomerID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		created, err := svc.CreateAccount(c.UserContext(), accountsvc.CreateAccountCommand{
			CustomerID:     customerID,
			Type:           input.Type,
			InitialBalance: decimal.NewFromFloat(input.InitialBalance),
			Currency:       input.Currency,
		})
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountDTO(created))
	}
}

// Get returns a handler that fetches one account by ID.
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		found, err := svc.GetAccount(c.UserContext(), *id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", toAccountDTO(found))
	}
}

// GetBalance returns a handler that reports the account balance.
func GetBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		balance, err := svc.GetBalance(c.UserContext(), *id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved", fiber.Map{
			"balance":  balance.Amount().StringFixed(2),
			"currency": string(balance.Currency()),
		})
	}
}

// ListByCustomer returns a handler that lists a customer's accounts.
func ListByCustomer(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		found, err := svc.ListAccountsByCustomer(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", toAccountDTOs(found))
	}
}

// ListTransactions returns a handler that lists transactions touching the
// account. The optional "limit" query parameter caps the result size.
func ListTransactions(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		limit := c.QueryInt("limit")
		found, err := svc.ListTransactions(c.UserContext(), *id, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", toTransactionDTOs(found))
	}
}

// Deposit returns a handler that deposits funds into the account.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[MovementRequest](c)
		if input == nil {
			return err
		}
		tx, err := svc.Deposit(c.UserContext(), accountsvc.MovementCommand{
			AccountID:   *id,
			Amount:      decimal.NewFromFloat(input.Amount),
			Currency:    input.Currency,
			Description: input.Description,
		})
		if err != nil {
			log.Errorf("Failed to deposit into account %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toTransactionDTO(tx))
	}
}

// Withdraw returns a handler that withdraws funds from the account.
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[MovementRequest](c)
		if input == nil {
			return err
		}
		tx, err := svc.Withdraw(c.UserContext(), accountsvc.MovementCommand{
			AccountID:   *id,
			Amount:      decimal.NewFromFloat(input.Amount),
			Currency:    input.Currency,
			Description: input.Description,
		})
		if err != nil {
			log.Errorf("Failed to withdraw from account %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toTransactionDTO(tx))
	}
}

// Transfer returns a handler that moves funds from the account to another.
// A failed transfer is reported in the response body, not as an HTTP error,
// unless the failure was a storage or input-shape problem.
func Transfer(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		targetID, err := uuid.Parse(input.TargetAccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid target account ID", err, "Target account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		result, err := svc.Transfer(c.UserContext(), accountsvc.TransferCommand{
			SourceAccountID: *id,
			TargetAccountID: targetID,
			Amount:          decimal.NewFromFloat(input.Amount),
			Currency:        input.Currency,
			Description:     input.Description,
		})
		if err != nil {
			log.Errorf("Failed to transfer from account %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		resp := TransferResponse{
			Success:         result.Success,
			Message:         result.Message,
			ReferenceNumber: result.ReferenceNumber,
			Transaction:     toTransactionDTO(result.Transaction),
		}
		status := fiber.StatusOK
		message := "Transfer successful"
		if !result.Success {
			status = fiber.StatusUnprocessableEntity
			message = "Transfer failed"
		}
		return common.SuccessResponseJSON(c, status, message, resp)
	}
}

// GetByReference returns a handler that looks a transfer up by its reference
// number.
func GetByReference(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := svc.GetTransactionByReference(c.UserContext(), c.Params("ref"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction retrieved", toTransactionDTO(tx))
	}
}

// ListByDateRange returns a handler that lists transactions created between
// the "from" and "to" query parameters (RFC 3339 timestamps).
func ListByDateRange(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date range", err, "from must be an RFC 3339 timestamp", fiber.StatusBadRequest)
		}
		to, err := time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date range", err, "to must be an RFC 3339 timestamp", fiber.StatusBadRequest)
		}
		found, err := svc.ListTransactionsByDateRange(c.UserContext(), from, to)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", toTransactionDTOs(found))
	}
}

func transition(op func(ctx context.Context, id uuid.UUID) error, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == nil {
			return err
		}
		if err := op(c.UserContext(), *id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to change account status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, message, nil)
	}
}

func parseAccountID(c *fiber.Ctx) (*uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
	}
	return &id, nil
}
