// Package state owns the in-memory entity stores and the id counter.
//
// There is exactly one logical writer (the current session), so the mutex
// here only protects the rendering layer's reads against a mutation in
// flight; it is not a multi-process guard.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"finboard/internal/model"
	"finboard/internal/storage"
)

// State holds every entity collection plus the shared id counter.
type State struct {
	mu             sync.RWMutex
	users          []model.User
	invitations    []model.Invitation
	categories     []model.Category
	paymentMethods []model.PaymentMethod
	transactions   []model.Transaction
	tasks          []model.Task
	nextID         int64
}

// New returns an empty state with the id counter at 1.
func New() *State {
	return &State{nextID: 1}
}

// Load restores state from the blob store. Missing blobs leave the
// corresponding collection empty; a missing counter starts at 1.
func Load(ctx context.Context, blobs storage.BlobStore) (*State, error) {
	s := New()

	load := func(key storage.Key, dst any) error {
		blob, ok, err := blobs.Load(ctx, key)
		if err != nil {
			return fmt.Errorf("loading %s: %w", key, err)
		}
		if !ok {
			return nil
		}
		if err := json.Unmarshal(blob, dst); err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}
		return nil
	}

	if err := load(storage.KeyUsers, &s.users); err != nil {
		return nil, err
	}
	if err := load(storage.KeyInvitations, &s.invitations); err != nil {
		return nil, err
	}
	if err := load(storage.KeyCategories, &s.categories); err != nil {
		return nil, err
	}
	if err := load(storage.KeyPaymentMethods, &s.paymentMethods); err != nil {
		return nil, err
	}
	if err := load(storage.KeyTransactions, &s.transactions); err != nil {
		return nil, err
	}
	if err := load(storage.KeyTasks, &s.tasks); err != nil {
		return nil, err
	}
	if err := load(storage.KeyIDCounter, &s.nextID); err != nil {
		return nil, err
	}
	if s.nextID < 1 {
		s.nextID = 1
	}

	return s, nil
}

// NextID allocates the next identifier. Identifiers are stringified values
// of a single counter shared across all entity kinds, so no two entities
// ever collide on id.
func (s *State) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return strconv.FormatInt(id, 10)
}

// Persist writes the named blobs (plus nothing else) to the store.
func (s *State) Persist(ctx context.Context, blobs storage.BlobStore, keys ...storage.Key) error {
	for _, key := range keys {
		blob, err := s.marshal(key)
		if err != nil {
			return err
		}
		if err := blobs.Save(ctx, key, blob); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) marshal(key storage.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v any
	switch key {
	case storage.KeyUsers:
		v = s.users
	case storage.KeyInvitations:
		v = s.invitations
	case storage.KeyCategories:
		v = s.categories
	case storage.KeyPaymentMethods:
		v = s.paymentMethods
	case storage.KeyTransactions:
		v = s.transactions
	case storage.KeyTasks:
		v = s.tasks
	case storage.KeyIDCounter:
		v = s.nextID
	default:
		return nil, fmt.Errorf("state does not own blob key %q", key)
	}

	blob, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	return blob, nil
}

// Users returns a copy of the user collection in insertion order.
func (s *State) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// Invitations returns a copy of the invitation collection.
func (s *State) Invitations() []model.Invitation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Invitation(nil), s.invitations...)
}

// Categories returns a copy of the category collection.
func (s *State) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.categories...)
}

// PaymentMethods returns a copy of the payment method collection.
func (s *State) PaymentMethods() []model.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PaymentMethod(nil), s.paymentMethods...)
}

// Transactions returns a copy of the transaction collection in insertion order.
func (s *State) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction(nil), s.transactions...)
}

// Tasks returns a copy of the task collection in insertion order.
func (s *State) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

// UserCount returns how many users are registered.
func (s *State) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// UserByID looks up a user by id.
func (s *State) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UserByEmail looks up a user by email.
func (s *State) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// PendingInvitationForEmail returns the pending invitation for email, if any.
func (s *State) PendingInvitationForEmail(email string) (model.Invitation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invitations {
		if inv.Email == email && inv.Status == model.InvitationPending {
			return inv, true
		}
	}
	return model.Invitation{}, false
}

// TransactionByID looks up a transaction by id.
func (s *State) TransactionByID(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// TaskByID looks up a task by id.
func (s *State) TaskByID(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// AddUser appends a user.
func (s *State) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// AddInvitation appends an invitation.
func (s *State) AddInvitation(inv model.Invitation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitations = append(s.invitations, inv)
}

// AddCategory appends a category.
func (s *State) AddCategory(c model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
}

// AddPaymentMethod appends a payment method.
func (s *State) AddPaymentMethod(pm model.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethods = append(s.paymentMethods, pm)
}

// AddTransaction appends a transaction.
func (s *State) AddTransaction(t model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
}

// AddTask appends a task.
func (s *State) AddTask(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
}

// RemoveTransaction deletes a transaction by id, reporting whether it existed.
func (s *State) RemoveTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTask deletes a task by id, reporting whether it existed.
func (s *State) RemoveTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// SetUserRole updates a user's role, reporting whether the user existed.
func (s *State) SetUserRole(id string, role model.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return true
		}
	}
	return false
}

// SetTaskStatus updates a task's status, reporting whether the task existed.
func (s *State) SetTaskStatus(id string, status model.TaskStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return true
		}
	}
	return false
}

// SetInvitationStatus updates an invitation's status, reporting whether it existed.
func (s *State) SetInvitationStatus(id string, status model.InvitationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invitations {
		if s.invitations[i].ID == id {
			s.invitations[i].Status = status
			return true
		}
	}
	return false
}
