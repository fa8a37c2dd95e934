// Package cart implements the cart store: the shopper's line items and
// the mini-cart sheet flag, persisted across restarts.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/cart"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/state"
)

// Store holds the current cart and persists it on every mutation
type Store struct {
	mu        sync.RWMutex
	cart      *cart.Cart
	snapshots state.SnapshotStore
	logger    *zap.Logger
}

// NewStore creates a cart store, rehydrating from persisted state.
// A missing or corrupt snapshot yields an empty cart.
func NewStore(ctx context.Context, snapshots state.SnapshotStore, logger *zap.Logger) *Store {
	s := &Store{
		cart:      cart.New(),
		snapshots: snapshots,
		logger:    logger,
	}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	data, found, err := s.snapshots.Load(ctx, state.CartKey)
	if err != nil {
		s.logger.Warn("Failed to load cart snapshot", zap.Error(err))
		return
	}
	if !found {
		return
	}
	restored := cart.New()
	if err := json.Unmarshal(data, restored); err != nil {
		s.logger.Warn("Discarding corrupt cart snapshot", zap.Error(err))
		return
	}
	s.cart = restored
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.cart)
	if err != nil {
		s.logger.Error("Failed to encode cart snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(ctx, state.CartKey, data); err != nil {
		s.logger.Error("Failed to save cart snapshot", zap.Error(err))
	}
}

// AddItem adds a product to the cart, merging into an existing line when
// the same product and variant is already present. It returns a copy of
// the resulting line item.
func (s *Store) AddItem(ctx context.Context, input cart.NewItemInput) (*cart.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.cart.AddItem(input)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	line := *item
	return &line, nil
}

// RemoveItem removes the matching line item. No-op when absent.
func (s *Store) RemoveItem(ctx context.Context, productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID, variantID)
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of the matching line item verbatim.
// No-op when absent.
func (s *Store) UpdateQuantity(ctx context.Context, productID, variantID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, variantID, quantity)
	s.persist(ctx)
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persist(ctx)
}

// OpenSheet marks the mini-cart sheet as visible
func (s *Store) OpenSheet(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SheetOpen = true
	s.persist(ctx)
}

// CloseSheet marks the mini-cart sheet as hidden
func (s *Store) CloseSheet(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SheetOpen = false
	s.persist(ctx)
}

// SheetOpen reports whether the mini-cart sheet is visible
func (s *Store) SheetOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.SheetOpen
}

// Items returns a copy of the current line items
func (s *Store) Items() []cart.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]cart.LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// Subtotal returns the sum of quantity times unit price over all lines
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Subtotal()
}

// ItemCount returns the total quantity across all lines
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.ItemCount()
}
