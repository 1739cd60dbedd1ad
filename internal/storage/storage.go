// Package storage persists the dashboard's state as named JSON blobs.
//
// The core's only persistence contract is a key-value store of string keys
// to JSON documents: one blob per entity collection, plus the id counter
// and the session snapshot. Writes are synchronous and last-writer-wins;
// there is no cross-process coordination.
package storage

import (
	"context"
	"errors"
)

// Key names a persisted blob.
type Key string

// Blob keys. One per entity store, plus session and counter state.
const (
	KeyUsers          Key = "users"
	KeyTransactions   Key = "transactions"
	KeyTasks          Key = "tasks"
	KeyCategories     Key = "categories"
	KeyPaymentMethods Key = "payment-methods"
	KeyInvitations    Key = "invitations"
	KeyAuth           Key = "auth"
	KeyCurrentUser    Key = "current-user"
	KeyIDCounter      Key = "id-counter"
)

// ErrEmptyKey is returned when a caller passes an empty key.
var ErrEmptyKey = errors.New("blob key cannot be empty")

// BlobStore is the persistence collaborator. Load reports ok=false when the
// key has never been saved; that is not an error.
type BlobStore interface {
	Load(ctx context.Context, key Key) (blob []byte, ok bool, err error)
	Save(ctx context.Context, key Key, blob []byte) error
	Delete(ctx context.Context, key Key) error
	Close() error
}
