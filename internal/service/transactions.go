package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/permission"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// TransactionService records and deletes transactions.
type TransactionService struct {
	state *state.State
	blobs storage.BlobStore
}

// NewTransactionService creates a TransactionService.
func NewTransactionService(st *state.State, blobs storage.BlobStore) *TransactionService {
	return &TransactionService{state: st, blobs: blobs}
}

// AddTransactionInput is the new-transaction form.
type AddTransactionInput struct {
	Type          model.TransactionType
	Category      string
	Description   string
	Amount        float64
	Date          time.Time // zero means now
	PaymentMethod string
	Platform      string
	IsAdvertising bool
}

// Add records a transaction owned by the acting user. The owner's name is
// denormalized onto the record at creation time and never updated.
func (s *TransactionService) Add(ctx context.Context, actor model.Actor, in AddTransactionInput) (*model.Transaction, error) {
	var missing []string
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		missing = append(missing, "paymentMethod")
	}
	if len(missing) > 0 {
		return nil, common.Validationf("required fields missing: %s", strings.Join(missing, ", "))
	}
	if !in.Type.Valid() {
		return nil, common.Validationf("unknown transaction type %q", in.Type)
	}

	if !permission.CanAddTransactions(actor) {
		return nil, common.Permissionf("viewers cannot record transactions")
	}

	owner, ok := s.state.UserByID(actor.ID)
	if !ok {
		return nil, common.NotFoundf("user %s not found", actor.ID)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	txn := model.Transaction{
		ID:            s.state.NextID(),
		Type:          in.Type,
		Category:      in.Category,
		Description:   in.Description,
		Amount:        in.Amount,
		Date:          date,
		PaymentMethod: in.PaymentMethod,
		Platform:      in.Platform,
		IsAdvertising: in.IsAdvertising,
		UserID:        owner.ID,
		UserName:      owner.Name,
	}
	s.state.AddTransaction(txn)
	persist(ctx, s.state, s.blobs, storage.KeyTransactions, storage.KeyIDCounter)

	slog.Debug("transaction recorded", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return &txn, nil
}

// Delete removes a transaction. Admins may delete any; everyone else only
// their own. The caller is expected to have confirmed the deletion with
// the user already.
func (s *TransactionService) Delete(ctx context.Context, actor model.Actor, id string) error {
	txn, ok := s.state.TransactionByID(id)
	if !ok {
		return common.NotFoundf("transaction %s not found", id)
	}
	if !permission.CanDeleteTransaction(actor, txn) {
		return common.Permissionf("you can only delete your own transactions")
	}

	s.state.RemoveTransaction(id)
	persist(ctx, s.state, s.blobs, storage.KeyTransactions)

	slog.Debug("transaction deleted", "id", id)
	return nil
}
