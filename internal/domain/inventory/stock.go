// Package inventory agrupa las proyecciones puras sobre el catálogo.
// Se recalculan en cada consulta; no hay cache.
package inventory

import (
	"strings"

	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// AllCategories es el valor de filtro que no restringe por categoría.
const AllCategories = "All"

// IsLowStock indica stock <= mínimo configurado.
func IsLowStock(p entity.Product) bool {
	return p.Stock <= p.MinThreshold
}

// LowStock devuelve los productos en alerta, en el orden recibido.
func LowStock(products []entity.Product) []entity.Product {
	var out []entity.Product
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryStock es el stock total de una categoría.
type CategoryStock struct {
	Category string
	Stock    int
}

// StockByCategory suma el stock por categoría conservando el orden de primera aparición.
func StockByCategory(products []entity.Product) []CategoryStock {
	idx := make(map[string]int)
	var out []CategoryStock
	for _, p := range products {
		i, ok := idx[p.Category]
		if !ok {
			i = len(out)
			idx[p.Category] = i
			out = append(out, CategoryStock{Category: p.Category})
		}
		out[i].Stock += p.Stock
	}
	return out
}

// Categories devuelve las categorías distintas en orden de primera aparición.
func Categories(products []entity.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Filter aplica la búsqueda por nombre (subcadena, sin distinguir mayúsculas)
// y el filtro de categoría. category vacío o "All" no filtra.
func Filter(products []entity.Product, search, category string) []entity.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
