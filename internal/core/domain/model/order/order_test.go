package order_test

import (
	"testing"
	"time"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/order"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() draft.Details {
	return draft.Details{
		Contact:     draft.Contact{Name: "山田太郎", Kana: "ヤマダタロウ", Tel: "0312345678", Email: "taro@example.com"},
		From:        13,
		FromAddress: "千代田区丸の内1-1",
		To:          27,
		ToAddress:   "大阪市北区梅田1-1",
		MovingDate:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Cargo:       draft.Cargo{Box: 20, Bed: 1},
	}
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	price := kernel.MustNewPrice(50000)
	createdAt := time.Date(2026, 10, 15, 18, 0, 0, 0, time.FixedZone("JST", 9*60*60))

	t.Run("should create valid order", func(t *testing.T) {
		o, err := order.NewOrder(id, validDetails(), price, "key-1", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, validDetails(), o.Details())
		assert.Equal(t, 50000, o.Price().Yen())
		assert.Equal(t, "key-1", o.IdempotencyKey())
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		assert.True(t, createdAt.Equal(o.CreatedAt()))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, validDetails(), price, "key-1", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail without a quoted price", func(t *testing.T) {
		o, err := order.NewOrder(id, validDetails(), kernel.Price{}, "key-1", createdAt)

		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should join every invalid detail", func(t *testing.T) {
		d := validDetails()
		d.To = 0
		d.Contact.Name = ""

		o, err := order.NewOrder(id, d, price, "", createdAt)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "idempotency key")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	zero := &order.Order{}
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := order.NewOrder(id, validDetails(), kernel.MustNewPrice(1), "a", time.Now())
	b, _ := order.RestoreOrder(id, validDetails(), kernel.MustNewPrice(2), "b", time.Now())
	c, _ := order.NewOrder(kernel.NewUUID(), validDetails(), kernel.MustNewPrice(1), "a", time.Now())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
