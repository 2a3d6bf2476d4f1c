package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bouquet = ProductSnapshot{ProductID: 1, Name: "Rose Bouquet", Price: 1000, Image: "/img/roses.jpg"}
	card    = ProductSnapshot{ProductID: 2, Name: "Message Card", Price: 550, Image: "/img/card.jpg"}
)

func newTestService() *Service {
	return NewService(NewMemoryStore())
}

func TestAddToCartMergesRegularProducts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)

	items, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.False(t, items[0].IsMessageCard)
}

func TestAddToCartCardsNeverMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	var items []LineItem
	var err error
	for i := 0; i < 3; i++ {
		items, err = svc.AddToCart(ctx, card, 1, true)
		require.NoError(t, err)
	}

	require.Len(t, items, 3)
	seen := map[string]bool{}
	for _, item := range items {
		assert.Equal(t, 1, item.Quantity)
		assert.True(t, item.IsMessageCard)
		assert.Empty(t, item.Text)
		assert.False(t, seen[item.LineID], "line IDs must be unique")
		seen[item.LineID] = true
	}
}

func TestAddToCartCardQuantityFansOut(t *testing.T) {
	svc := newTestService()

	items, err := svc.AddToCart(context.Background(), card, 4, true)
	require.NoError(t, err)
	require.Len(t, items, 4)
	for _, item := range items {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestAddMessageCardsSetsTextOnNewLinesOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// A card added without a message stays blank...
	items, err := svc.AddMessageCards(ctx, card, 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	blankLineID := items[0].LineID

	// ...even when a later add of the same product carries one.
	items, err = svc.AddMessageCards(ctx, card, 1, "Happy Birthday")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, blankLineID, items[0].LineID)
	assert.Empty(t, items[0].Text, "existing card must keep its own message")
	assert.Equal(t, "Happy Birthday", items[1].Text)
}

func TestAddMessageCardsFansOutWithSharedText(t *testing.T) {
	svc := newTestService()

	items, err := svc.AddMessageCards(context.Background(), card, 3, "Parabéns!")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, "Parabéns!", item.Text)
	}
}

func TestAddMessageCardsRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddMessageCards(context.Background(), card, 0, "hi")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddToCartPriceSnapshotIsStable(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)

	// The same product at a new price still merges, keeping the add-time price.
	repriced := bouquet
	repriced.Price = 9999
	items, err := svc.AddToCart(ctx, repriced, 1, false)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestService()

	for _, quantity := range []int{0, -1} {
		_, err := svc.AddToCart(context.Background(), bouquet, quantity, false)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestRemoveLineItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)
	items, err := svc.AddToCart(ctx, card, 1, true)
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = svc.RemoveLineItem(ctx, items[0].LineID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, card.ProductID, items[0].ProductID)
}

func TestRemoveLineItemMissingIDIsNoOp(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 2, false)
	require.NoError(t, err)
	before, err := svc.Items(ctx)
	require.NoError(t, err)

	after, err := svc.RemoveLineItem(ctx, "no-such-line")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)

	items, err = svc.UpdateQuantity(ctx, items[0].LineID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	_, err = svc.UpdateQuantity(ctx, items[0].LineID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Missing line ID is a no-op, not an error.
	after, err := svc.UpdateQuantity(ctx, "no-such-line", 3)
	require.NoError(t, err)
	assert.Equal(t, items, after)
}

func TestUpdateText(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, card, 1, true)
	require.NoError(t, err)

	items, err = svc.UpdateText(ctx, items[0].LineID, "Happy birthday, Ana!")
	require.NoError(t, err)
	assert.Equal(t, "Happy birthday, Ana!", items[0].Text)

	// Each card keeps its own message.
	items, err = svc.AddToCart(ctx, card, 1, true)
	require.NoError(t, err)
	assert.Equal(t, "Happy birthday, Ana!", items[0].Text)
	assert.Empty(t, items[1].Text)
}

func TestTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 2, false) // 10.00 x 2
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, card, 1, true) // 5.50 x 1
	require.NoError(t, err)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(2550), totals.SubTotal) // 25.50
}

func TestClear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 2, false)
	require.NoError(t, err)

	items, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.SubTotal)
}

// failingStore wraps a MemoryStore and fails writes on demand.
type failingStore struct {
	*MemoryStore
	failSave bool
}

func (f *failingStore) Save(ctx context.Context, items []LineItem) error {
	if f.failSave {
		return ErrStoreUnavailable
	}
	return f.MemoryStore.Save(ctx, items)
}

func TestFailedSaveIsNotCommitted(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, bouquet, 1, false)
	require.NoError(t, err)

	store.failSave = true
	_, err = svc.AddToCart(ctx, bouquet, 1, false)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	store.failSave = false
	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity, "failed write must not be observable")
}

func TestLoadErrorPropagates(t *testing.T) {
	svc := NewService(erroringStore{})

	_, err := svc.Items(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.RemoveLineItem(context.Background(), "x")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

type erroringStore struct{}

func (erroringStore) Load(ctx context.Context) ([]LineItem, error) {
	return nil, fmt.Errorf("%w: connection refused", ErrStoreUnavailable)
}

func (erroringStore) Save(ctx context.Context, items []LineItem) error {
	return ErrStoreUnavailable
}
