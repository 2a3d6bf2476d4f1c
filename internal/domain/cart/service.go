// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidQuantity indicates a caller-supplied quantity below 1. Rejected
// rather than clamped so caller bugs stay visible.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Service handles cart business logic over an injected Store. Every mutation
// loads the current snapshot, computes the new one and writes it back whole;
// a failed write fails the operation.
type Service struct {
	store Store
}

// NewService creates a new cart service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Items returns the current cart in insertion order.
func (s *Service) Items(ctx context.Context) ([]LineItem, error) {
	return s.store.Load(ctx)
}

// AddToCart adds a product to the cart and returns the full updated cart.
//
// Message cards never merge: a request for N cards produces N separate lines
// of quantity 1, each with a fresh line ID and its own empty message, so each
// physical card stays independently customizable. Regular products merge into
// the existing line for the same product, if any.
func (s *Service) AddToCart(ctx context.Context, snapshot ProductSnapshot, quantity int, isMessageCard bool) ([]LineItem, error) {
	if isMessageCard {
		return s.AddMessageCards(ctx, snapshot, quantity, "")
	}

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == snapshot.ProductID && !items[i].IsMessageCard {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			LineID:    uuid.NewString(),
			ProductID: snapshot.ProductID,
			Name:      snapshot.Name,
			Price:     snapshot.Price,
			Image:     snapshot.Image,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	if err := s.store.Save(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddMessageCards adds quantity separate card lines, each of quantity 1 with a
// fresh line ID, all carrying the given initial message. Lines already in the
// cart are never touched: a card's message belongs to that line alone and is
// only ever changed through UpdateText on its line ID.
func (s *Service) AddMessageCards(ctx context.Context, snapshot ProductSnapshot, quantity int, text string) ([]LineItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := 0; i < quantity; i++ {
		items = append(items, LineItem{
			LineID:        uuid.NewString(),
			ProductID:     snapshot.ProductID,
			Name:          snapshot.Name,
			Price:         snapshot.Price,
			Image:         snapshot.Image,
			IsMessageCard: true,
			Quantity:      1,
			Text:          text,
			AddedAt:       now,
		})
	}

	if err := s.store.Save(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// RemoveLineItem removes the line with the given ID. A missing ID is a
// silent no-op: the UI may race a stale reference against an already-applied
// removal.
func (s *Service) RemoveLineItem(ctx context.Context, lineID string) ([]LineItem, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].LineID == lineID {
			items = append(items[:i], items[i+1:]...)
			if err := s.store.Save(ctx, items); err != nil {
				return nil, err
			}
			break
		}
	}

	return items, nil
}

// UpdateQuantity sets the quantity of the line with the given ID. Quantities
// below 1 are rejected with ErrInvalidQuantity; a missing ID is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, lineID string, quantity int) ([]LineItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].LineID == lineID {
			items[i].Quantity = quantity
			if err := s.store.Save(ctx, items); err != nil {
				return nil, err
			}
			break
		}
	}

	return items, nil
}

// UpdateText sets the message text of the line with the given ID. Only
// meaningful for message-card lines, but not rejected on others; the field is
// simply unused there. A missing ID is a no-op.
func (s *Service) UpdateText(ctx context.Context, lineID, text string) ([]LineItem, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].LineID == lineID {
			items[i].Text = text
			if err := s.store.Save(ctx, items); err != nil {
				return nil, err
			}
			break
		}
	}

	return items, nil
}

// Clear removes all line items unconditionally.
func (s *Service) Clear(ctx context.Context) ([]LineItem, error) {
	items := []LineItem{}
	if err := s.store.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Totals computes the current cart totals.
func (s *Service) Totals(ctx context.Context) (Totals, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return Totals{}, err
	}
	return CalculateTotals(items), nil
}
