package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/transaction"
)

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	CustomerID     string  `json:"customer_id" validate:"required,uuid4"`
	Type           string  `json:"type" validate:"omitempty,oneof=current savings deposit"`
	InitialBalance float64 `json:"initial_balance" validate:"omitempty,gte=0"`
	Currency       string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
}

// MovementRequest represents the request body for deposits and withdrawals.
type MovementRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	Description string  `json:"description" validate:"omitempty,max=256"`
}

// TransferRequest represents the request body for transferring funds between
// accounts.
type TransferRequest struct {
	TargetAccountID string  `json:"target_account_id" validate:"required,uuid4"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	Description     string  `json:"description" validate:"omitempty,max=256"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Number     string    `json:"number"`
	IBAN       string    `json:"iban"`
	Balance    string    `json:"balance"`
	Currency   string    `json:"currency"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TransactionDTO is the API response representation of a transaction.
type TransactionDTO struct {
	ID          string     `json:"id"`
	SourceID    string     `json:"source_id"`
	TargetID    string     `json:"target_id,omitempty"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	FailReason  string     `json:"fail_reason,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TransferResponse reports the outcome of a transfer request.
type TransferResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Transaction     *TransactionDTO `json:"transaction,omitempty"`
}

func toAccountDTO(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:         a.ID().String(),
		CustomerID: a.CustomerID().String(),
		Number:     a.Number(),
		IBAN:       a.IBAN(),
		Balance:    a.Balance().Amount().StringFixed(2),
		Currency:   string(a.Currency()),
		Type:       string(a.Type()),
		Status:     string(a.Status()),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func toAccountDTOs(as []*account.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(as))
	for _, a := range as {
		out = append(out, toAccountDTO(a))
	}
	return out
}

func toTransactionDTO(t *transaction.Transaction) *TransactionDTO {
	if t == nil {
		return nil
	}
	dto := &TransactionDTO{
		ID:          t.ID().String(),
		SourceID:    t.SourceID().String(),
		Amount:      t.Amount().Amount().StringFixed(2),
		Currency:    string(t.Amount().Currency()),
		Type:        string(t.Type()),
		Status:      string(t.Status()),
		Description: t.Description(),
		Reference:   t.Reference(),
		FailReason:  t.FailReason(),
		CreatedAt:   t.CreatedAt(),
	}
	if t.TargetID() != uuid.Nil {
		dto.TargetID = t.TargetID().String()
	}
	if done := t.CompletedAt(); !done.IsZero() {
		dto.CompletedAt = &done
	}
	return dto
}

func toTransactionDTOs(ts []*transaction.Transaction) []*TransactionDTO {
	out := make([]*TransactionDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTransactionDTO(t))
	}
	return out
}
