package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"caterly/models"
	"caterly/services/cart"
)

type memOrderRepo struct {
	orders map[string]models.Order
}

func (r *memOrderRepo) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.ID = uuid.NewString()
	r.orders[order.ID] = order
	return &order, nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	return &order, nil
}

func (r *memOrderRepo) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// stubCart serves a fixed set of lines and records removals.
type stubCart struct {
	lines   []models.CartLine
	removed []string
}

func (c *stubCart) GetCart(ctx context.Context, owner models.CartOwner) ([]models.CartLine, error) {
	return c.lines, nil
}

func (c *stubCart) AddToCart(ctx context.Context, owner models.CartOwner, input cart.AddInput) (*models.CartLine, error) {
	return nil, errors.New("not used")
}

func (c *stubCart) UpdateLine(ctx context.Context, owner models.CartOwner, lineID string, input cart.UpdateInput) (*models.CartLine, error) {
	return nil, errors.New("not used")
}

func (c *stubCart) RemoveLine(ctx context.Context, owner models.CartOwner, lineID string) error {
	c.removed = append(c.removed, lineID)
	return nil
}

func (c *stubCart) MigrateLocalCartToRemote(ctx context.Context, deviceID, userID string) (*cart.MigrationReport, error) {
	return nil, errors.New("not used")
}

func newOrderService(lines ...models.CartLine) (*DefaultOrderService, *stubCart, *memOrderRepo) {
	repo := &memOrderRepo{orders: make(map[string]models.Order)}
	stub := &stubCart{lines: lines}
	return &DefaultOrderService{Repo: repo, Cart: stub}, stub, repo
}

func TestCreateOrderSnapshotsSelectedLines(t *testing.T) {
	lineA := models.CartLine{ID: "l-1", OwnerID: "user-1", PackageID: "pkg-1", PriceAtTime: 7500, Currency: "EUR"}
	lineB := models.CartLine{ID: "l-2", OwnerID: "user-1", PackageID: "pkg-2", PriceAtTime: 1200, Currency: "EUR"}
	svc, stub, _ := newOrderService(lineA, lineB)

	order, err := svc.CreateOrder(context.Background(), "user-1", []string{"l-1", "l-2"})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, "user-1", order.UserID)
	require.Equal(t, "pending", order.Status)
	require.Equal(t, 8700.0, order.TotalPrice)
	require.Equal(t, "EUR", order.Currency)
	require.Len(t, order.Lines, 2)

	// Checked-out lines are consumed from the cart.
	require.ElementsMatch(t, []string{"l-1", "l-2"}, stub.removed)
}

func TestCreateOrderWithSubsetLeavesTheRest(t *testing.T) {
	lineA := models.CartLine{ID: "l-1", PriceAtTime: 500, Currency: "EUR"}
	lineB := models.CartLine{ID: "l-2", PriceAtTime: 900, Currency: "EUR"}
	svc, stub, _ := newOrderService(lineA, lineB)

	order, err := svc.CreateOrder(context.Background(), "user-1", []string{"l-2"})
	require.NoError(t, err)
	require.Equal(t, 900.0, order.TotalPrice)
	require.Equal(t, []string{"l-2"}, stub.removed)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _ := newOrderService()

	_, err := svc.CreateOrder(context.Background(), "", []string{"l-1"})
	require.Error(t, err)

	_, err = svc.CreateOrder(context.Background(), "user-1", nil)
	require.Error(t, err)

	_, err = svc.CreateOrder(context.Background(), "user-1", []string{"l-missing"})
	require.Error(t, err)
}

func TestGetOrderRoundTrip(t *testing.T) {
	line := models.CartLine{ID: "l-1", PriceAtTime: 500, Currency: "EUR"}
	svc, _, _ := newOrderService(line)

	created, err := svc.CreateOrder(context.Background(), "user-1", []string{"l-1"})
	require.NoError(t, err)

	fetched, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	all, err := svc.GetUserOrders(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
}
