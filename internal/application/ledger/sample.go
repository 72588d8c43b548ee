package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SampleProducts es el catálogo de demostración (seis repuestos).
func SampleProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Engine Oil 1L (Syntix)", Category: "Lubricants", Price: dec("850"), Stock: 25, MinThreshold: 10, TaxRate: dec("18")},
		{ID: "2", Name: "Brake Pad Set (Front)", Category: "Braking", Price: dec("320"), Stock: 15, MinThreshold: 5, TaxRate: dec("12")},
		{ID: "3", Name: "Chain Sprocket Kit", Category: "Transmission", Price: dec("1450"), Stock: 8, MinThreshold: 5, TaxRate: dec("18")},
		{ID: "4", Name: "LED Headlamp Bulb", Category: "Electrical", Price: dec("650"), Stock: 4, MinThreshold: 10, TaxRate: dec("28")},
		{ID: "5", Name: "Side Mirror (Left)", Category: "Body", Price: dec("180"), Stock: 30, MinThreshold: 15, TaxRate: dec("12")},
		{ID: "6", Name: "Spark Plug (NGK)", Category: "Electrical", Price: dec("120"), Stock: 50, MinThreshold: 20, TaxRate: dec("18")},
	}
}

// SampleBills son las dos facturas de demostración, más reciente primero.
// Sus totales ya están calculados; el stock del catálogo de ejemplo no las descuenta.
func SampleBills() []entity.Bill {
	return []entity.Bill{
		{
			ID:            "B-1002",
			CustomerName:  "Amit Patel",
			CustomerPhone: "9898989898",
			Date:          time.Date(2024, 5, 16, 14, 45, 0, 0, time.UTC),
			Items: []entity.BillItem{
				{ID: "i2", ProductID: "2", Name: "Brake Pad Set (Front)", Price: dec("320"), TaxRate: dec("12"), Quantity: 2},
				{ID: "i3", ProductID: "6", Name: "Spark Plug (NGK)", Price: dec("120"), TaxRate: dec("18"), Quantity: 1},
			},
			Subtotal:   dec("760"),
			TaxTotal:   dec("98.4"),
			GrandTotal: dec("858.4"),
		},
		{
			ID:            "B-1001",
			CustomerName:  "Rahul Sharma",
			CustomerPhone: "9876543210",
			Date:          time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
			Items: []entity.BillItem{
				{ID: "i1", ProductID: "1", Name: "Engine Oil 1L (Syntix)", Price: dec("850"), TaxRate: dec("18"), Quantity: 1},
			},
			Subtotal:   dec("850"),
			TaxTotal:   dec("153"),
			GrandTotal: dec("1003"),
		},
	}
}
