// Package catalog holds the in-memory snapshot of the backend's product
// list. The snapshot is the sole local copy of backend truth: it is
// replaced wholesale after every successful fetch and never patched in
// place. Mutations (add, update, remove) go to the backend first and then
// trigger a full re-fetch; on any failure the prior snapshot stays as is.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"inventario-admin/gateway"
	"inventario-admin/models"
)

// ErrNotFound reports a product id missing from the current snapshot
var ErrNotFound = fmt.Errorf("product not found in catalog")

// Store owns the catalog snapshot
type Store struct {
	api gateway.CatalogAPI

	mu       sync.Mutex
	products []models.Product
	// fetch correlation: a response is applied only if no newer fetch
	// already applied its snapshot
	nextSeq    uint64
	appliedSeq uint64
}

// NewStore creates an empty Store backed by the given catalog API
func NewStore(api gateway.CatalogAPI) *Store {
	return &Store{api: api}
}

// Refresh fetches the current product list and replaces the snapshot.
// Concurrent refreshes are correlated by a monotonic sequence number so a
// slow older response cannot overwrite a newer snapshot. On failure the
// prior snapshot is left untouched.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	products, err := s.api.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.appliedSeq {
		// a newer fetch already landed; drop this snapshot
		return nil
	}
	s.appliedSeq = seq
	s.products = products
	return nil
}

// Products returns a copy of the current snapshot
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the snapshot's product with the given id
func (s *Store) Get(productID int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Search returns the products whose name contains term, case-insensitive,
// sorted by name. An empty term returns the whole snapshot.
func (s *Store) Search(term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.Lock()
	var out []models.Product
	for _, p := range s.products {
		if term == "" || strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Add creates a product on the backend and refreshes the snapshot.
// There is no optimistic local insert.
func (s *Store) Add(ctx context.Context, draft models.ProductDraft) error {
	if err := s.api.CreateProduct(ctx, draft); err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	return s.Refresh(ctx)
}

// Update replaces the full record on the backend and refreshes the snapshot
func (s *Store) Update(ctx context.Context, product models.Product) error {
	if err := s.api.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("update product %d: %w", product.ProductID, err)
	}
	return s.Refresh(ctx)
}

// Remove deletes the product on the backend and refreshes the snapshot.
// Callers must have obtained user confirmation before calling this.
func (s *Store) Remove(ctx context.Context, productID int) error {
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("remove product %d: %w", productID, err)
	}
	return s.Refresh(ctx)
}
