package billing

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name    string
		item    entity.OrderItem
		want    int64
		wantErr error
	}{
		{
			name: "price times quantity",
			item: entity.OrderItem{Name: "Cola", Price: 250, Quantity: 2},
			want: 500,
		},
		{
			name: "missing quantity defaults to 1",
			item: entity.OrderItem{Name: "Tea", Price: 150},
			want: 150,
		},
		{
			name: "free item",
			item: entity.OrderItem{Name: "Water", Price: 0, Quantity: 3},
			want: 0,
		},
		{
			name:    "negative price is rejected",
			item:    entity.OrderItem{Name: "Fries", Price: -100, Quantity: 1},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "negative quantity is rejected",
			item:    entity.OrderItem{Name: "Fries", Price: 100, Quantity: -2},
			wantErr: ErrBadQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineTotal(tt.item)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.item.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	t.Run("sums line totals", func(t *testing.T) {
		order := entity.Order{Items: []entity.OrderItem{
			{Name: "Cola", Price: 250, Quantity: 2},
			{Name: "Fries", Price: 300},
		}}
		got, err := OrderTotal(order)
		require.NoError(t, err)
		assert.Equal(t, int64(800), got)
	})

	t.Run("no items means zero", func(t *testing.T) {
		got, err := OrderTotal(entity.Order{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("bad item fails the whole order", func(t *testing.T) {
		order := entity.Order{Items: []entity.OrderItem{
			{Name: "Cola", Price: 250},
			{Name: "Fries", Price: -1, Quantity: 1},
		}}
		_, err := OrderTotal(order)
		require.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestTabTotal(t *testing.T) {
	t.Run("sums across orders", func(t *testing.T) {
		tab := entity.Tab{Orders: []entity.Order{
			{Items: []entity.OrderItem{{Name: "Cola", Price: 250, Quantity: 2}}},
			{Items: []entity.OrderItem{{Name: "Cake", Price: 450}}},
		}}
		got, err := TabTotal(tab)
		require.NoError(t, err)
		assert.Equal(t, int64(950), got)
	})

	t.Run("tab without orders is zero", func(t *testing.T) {
		got, err := TabTotal(entity.Tab{CustomerName: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("never returns a silent negative total", func(t *testing.T) {
		tab := entity.Tab{Orders: []entity.Order{
			{Items: []entity.OrderItem{{Name: "Fries", Price: -1, Quantity: 1}}},
		}}
		_, err := TabTotal(tab)
		require.ErrorIs(t, err, ErrNegativePrice)
	})
}
