package service

import (
	"context"
	"log/slog"
	"strings"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// CatalogService manages categories and payment methods. Any authenticated
// actor may add entries; nothing is ever deleted, and name uniqueness is
// deliberately not enforced.
type CatalogService struct {
	state *state.State
	blobs storage.BlobStore
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(st *state.State, blobs storage.BlobStore) *CatalogService {
	return &CatalogService{state: st, blobs: blobs}
}

// AddCategory creates a category for the given transaction type.
func (s *CatalogService) AddCategory(ctx context.Context, name string, typ model.TransactionType) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.Validationf("required fields missing: name")
	}
	if !typ.Valid() {
		return nil, common.Validationf("unknown transaction type %q", typ)
	}

	cat := model.Category{ID: s.state.NextID(), Name: name, Type: typ}
	s.state.AddCategory(cat)
	persist(ctx, s.state, s.blobs, storage.KeyCategories, storage.KeyIDCounter)

	slog.Debug("category added", "id", cat.ID, "name", cat.Name)
	return &cat, nil
}

// AddPaymentMethod creates a payment method.
func (s *CatalogService) AddPaymentMethod(ctx context.Context, name string) (*model.PaymentMethod, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.Validationf("required fields missing: name")
	}

	pm := model.PaymentMethod{ID: s.state.NextID(), Name: name}
	s.state.AddPaymentMethod(pm)
	persist(ctx, s.state, s.blobs, storage.KeyPaymentMethods, storage.KeyIDCounter)

	slog.Debug("payment method added", "id", pm.ID, "name", pm.Name)
	return &pm, nil
}
