package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// DayFormat es el formato de día calendario usado para agrupar ventas (UTC).
const DayFormat = "2006-01-02"

// DailySales es el total facturado en un día calendario.
type DailySales struct {
	Day   string
	Total decimal.Decimal
}

// SalesByDay suma el total de las facturas por día calendario, en orden de primera aparición.
func SalesByDay(bills []entity.Bill) []DailySales {
	idx := make(map[string]int)
	var out []DailySales
	for _, b := range bills {
		day := b.Date.UTC().Format(DayFormat)
		i, ok := idx[day]
		if !ok {
			i = len(out)
			idx[day] = i
			out = append(out, DailySales{Day: day, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(b.GrandTotal)
	}
	return out
}

// TotalSales suma el total de todas las facturas.
func TotalSales(bills []entity.Bill) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bills {
		sum = sum.Add(b.GrandTotal)
	}
	return sum
}

// TotalItemsSold suma las cantidades vendidas en todas las facturas.
func TotalItemsSold(bills []entity.Bill) int {
	n := 0
	for _, b := range bills {
		n += b.ItemCount()
	}
	return n
}
