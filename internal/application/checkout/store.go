// Package checkout implements the checkout store: the in-progress
// checkout form draft, persisted across restarts so a half-filled form
// survives a reload.
package checkout

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/checkout"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/state"
)

// Store holds the current checkout draft and persists it on every mutation
type Store struct {
	mu             sync.RWMutex
	draft          *checkout.Draft
	defaultCountry string
	snapshots      state.SnapshotStore
	logger         *zap.Logger
}

// NewStore creates a checkout store, rehydrating from persisted state.
// A missing or corrupt snapshot yields an empty draft with the default
// country preselected. An empty defaultCountry keeps the built-in one.
func NewStore(ctx context.Context, snapshots state.SnapshotStore, defaultCountry string, logger *zap.Logger) *Store {
	s := &Store{
		defaultCountry: defaultCountry,
		snapshots:      snapshots,
		logger:         logger,
	}
	s.draft = s.defaultDraft()
	s.rehydrate(ctx)
	return s
}

func (s *Store) defaultDraft() *checkout.Draft {
	d := checkout.NewDraft()
	if s.defaultCountry != "" {
		d.Shipping.Country = s.defaultCountry
	}
	return d
}

func (s *Store) rehydrate(ctx context.Context) {
	data, found, err := s.snapshots.Load(ctx, state.CheckoutKey)
	if err != nil {
		s.logger.Warn("Failed to load checkout snapshot", zap.Error(err))
		return
	}
	if !found {
		return
	}
	restored := s.defaultDraft()
	if err := json.Unmarshal(data, restored); err != nil {
		s.logger.Warn("Discarding corrupt checkout snapshot", zap.Error(err))
		return
	}
	s.draft = restored
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.draft)
	if err != nil {
		s.logger.Error("Failed to encode checkout snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(ctx, state.CheckoutKey, data); err != nil {
		s.logger.Error("Failed to save checkout snapshot", zap.Error(err))
	}
}

// SetContactInfo sets the contact fields, leaving the rest of the draft
// untouched
func (s *Store) SetContactInfo(ctx context.Context, email, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetContactInfo(email, phone)
	s.persist(ctx)
}

// SetShippingAddress replaces the shipping address wholesale
func (s *Store) SetShippingAddress(ctx context.Context, address checkout.ShippingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetShippingAddress(address)
	s.persist(ctx)
}

// SetPaymentMethod sets the payment method. An unknown method is
// rejected and the previous selection is kept.
func (s *Store) SetPaymentMethod(ctx context.Context, method checkout.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.draft.SetPaymentMethod(method); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Clear resets the draft to its defaults, including the preselected
// country
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.defaultDraft()
	s.persist(ctx)
}

// Draft returns a copy of the current draft
func (s *Store) Draft() checkout.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.draft
}
