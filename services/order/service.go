// Package order converts a user's cart lines into an order at checkout.
// Fulfilment and status workflows live in the back-office surface; this
// service only performs the snapshot-and-clear conversion.
package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	orderRepo "caterly/database/repository/order"
	"caterly/models"
	"caterly/services/cart"
	"caterly/utils"
)

// OrderService creates orders from cart lines.
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, cartLineIDs []string) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]models.Order, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Repo orderRepo.OrderRepository
	Cart cart.CartService
}

// CreateOrder snapshots the named cart lines into a pending order and removes
// them from the cart. Only authenticated (remote) carts can check out.
func (s *DefaultOrderService) CreateOrder(ctx context.Context, userID string, cartLineIDs []string) (*models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if len(cartLineIDs) == 0 {
		return nil, fmt.Errorf("at least one cart line is required")
	}

	owner := models.CartOwner{UserID: userID, Authenticated: true}
	lines, err := s.Cart.GetCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.CartLine, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	selected := make([]models.CartLine, 0, len(cartLineIDs))
	total := 0.0
	currency := ""
	for _, id := range cartLineIDs {
		line, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("cart line %s not found in cart", id)
		}
		selected = append(selected, line)
		total += line.PriceAtTime
		if currency == "" {
			currency = line.Currency
		}
	}

	order := models.Order{
		UserID:     userID,
		Lines:      selected,
		TotalPrice: total,
		Currency:   currency,
		Status:     "pending",
	}

	created, err := s.Repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The cart lines are consumed by the order. Removal is idempotent, so a
	// retry after a partial failure here converges.
	logger := utils.GetLogger()
	for _, line := range selected {
		if err := s.Cart.RemoveLine(ctx, owner, line.ID); err != nil {
			logger.Warn("failed to remove checked-out cart line",
				zap.String("lineID", line.ID),
				zap.String("orderID", created.ID),
				zap.Error(err))
		}
	}

	return created, nil
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, orderID)
}

func (s *DefaultOrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.GetByUser(ctx, userID)
}
