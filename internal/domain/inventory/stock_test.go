package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/internal/domain/inventory"
)

func catalog() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Engine Oil 1L (Syntix)", Category: "Lubricants", Stock: 25, MinThreshold: 10},
		{ID: "4", Name: "LED Headlamp Bulb", Category: "Electrical", Stock: 4, MinThreshold: 10},
		{ID: "6", Name: "Spark Plug (NGK)", Category: "Electrical", Stock: 50, MinThreshold: 20},
		{ID: "5", Name: "Side Mirror (Left)", Category: "Body", Stock: 15, MinThreshold: 15},
	}
}

func TestIsLowStock_IncluyeElUmbral(t *testing.T) {
	assert.True(t, inventory.IsLowStock(entity.Product{Stock: 5, MinThreshold: 5}))
	assert.True(t, inventory.IsLowStock(entity.Product{Stock: -2, MinThreshold: 0}))
	assert.False(t, inventory.IsLowStock(entity.Product{Stock: 6, MinThreshold: 5}))
}

func TestLowStock(t *testing.T) {
	low := inventory.LowStock(catalog())
	require.Len(t, low, 2)
	assert.Equal(t, "4", low[0].ID)
	assert.Equal(t, "5", low[1].ID)
}

func TestStockByCategory_OrdenDePrimeraAparicion(t *testing.T) {
	got := inventory.StockByCategory(catalog())
	assert.Equal(t, []inventory.CategoryStock{
		{Category: "Lubricants", Stock: 25},
		{Category: "Electrical", Stock: 54},
		{Category: "Body", Stock: 15},
	}, got)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Lubricants", "Electrical", "Body"}, inventory.Categories(catalog()))
	assert.Empty(t, inventory.Categories(nil))
}

func TestFilter(t *testing.T) {
	t.Run("busqueda sin distinguir mayusculas", func(t *testing.T) {
		got := inventory.Filter(catalog(), "spark", "")
		require.Len(t, got, 1)
		assert.Equal(t, "6", got[0].ID)
	})
	t.Run("categoria", func(t *testing.T) {
		assert.Len(t, inventory.Filter(catalog(), "", "Electrical"), 2)
	})
	t.Run("All no filtra", func(t *testing.T) {
		assert.Len(t, inventory.Filter(catalog(), "", inventory.AllCategories), 4)
	})
	t.Run("combinado sin resultados", func(t *testing.T) {
		assert.Empty(t, inventory.Filter(catalog(), "mirror", "Electrical"))
	})
}
