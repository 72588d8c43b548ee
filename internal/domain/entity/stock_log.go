package entity

import "time"

// StockChangeKind clasifica una entrada del historial de stock.
type StockChangeKind string

const (
	StockChangeSale       StockChangeKind = "sale"
	StockChangePurchase   StockChangeKind = "purchase"
	StockChangeAdjustment StockChangeKind = "adjustment"
	StockChangeManual     StockChangeKind = "manual"
	StockChangeDeletion   StockChangeKind = "deletion"
)

// StockLogEntry registra un cambio de stock. Las entradas nunca se editan ni se borran.
type StockLogEntry struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Change    int             `json:"change"`
	Kind      StockChangeKind `json:"type"`
	Date      time.Time       `json:"date"`
}
