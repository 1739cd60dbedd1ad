// Package service implements the validated, permission-gated mutations.
//
// Every operation follows the same contract: validate input, consult the
// permission engine, check references and uniqueness, then mutate the
// state and persist the touched blobs. A failed check returns a typed
// error from internal/common and leaves the state untouched; there are no
// partial mutations.
package service

import (
	"context"
	"log/slog"

	"finboard/internal/session"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// Services bundles every mutation service over one shared state.
type Services struct {
	Auth         *AuthService
	Users        *UserService
	Transactions *TransactionService
	Tasks        *TaskService
	Catalog      *CatalogService
}

// New wires all services to the given state, blob store, and session.
func New(st *state.State, blobs storage.BlobStore, sess *session.Session) *Services {
	return &Services{
		Auth:         NewAuthService(st, blobs, sess),
		Users:        NewUserService(st, blobs),
		Transactions: NewTransactionService(st, blobs),
		Tasks:        NewTaskService(st, blobs),
		Catalog:      NewCatalogService(st, blobs),
	}
}

// persist writes the touched blobs after a successful mutation. Writes are
// fire-and-forget: a storage failure is logged, not rolled back, since the
// in-memory mutation already happened and the next write will retry the
// full snapshot anyway.
func persist(ctx context.Context, st *state.State, blobs storage.BlobStore, keys ...storage.Key) {
	if err := st.Persist(ctx, blobs, keys...); err != nil {
		slog.Error("failed to persist state", "keys", keys, "error", err)
	}
}
