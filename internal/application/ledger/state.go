// Package ledger mantiene el estado autoritativo de la tienda: catálogo,
// facturas e historial de stock. Es el único punto de mutación; el proceso
// principal crea un State y lo comparte por referencia con los casos de uso.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// State guarda las colecciones en orden más-reciente-primero.
// Cada operación toma el mutex y corre completa antes de la siguiente.
type State struct {
	mu       sync.Mutex
	products []entity.Product
	bills    []entity.Bill
	log      []entity.StockLogEntry

	now   func() time.Time
	newID func() string
}

// Option personaliza el reloj o el generador de IDs (tests).
type Option func(*State)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithIDGenerator reemplaza uuid.NewString.
func WithIDGenerator(gen func() string) Option {
	return func(s *State) { s.newID = gen }
}

// NewState crea el estado con un catálogo y facturas iniciales (ya ordenados
// más-reciente-primero). El historial de stock arranca vacío.
func NewState(products []entity.Product, bills []entity.Bill, opts ...Option) *State {
	s := &State{
		products: append([]entity.Product(nil), products...),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, b := range bills {
		s.bills = append(s.bills, b.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// AddProduct asigna un ID nuevo, inserta el producto al frente y registra
// una entrada "manual" con el stock inicial.
func (s *State) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	s.products = append([]entity.Product{p}, s.products...)
	s.prependLog(s.entry(p.ID, p.Stock, entity.StockChangeManual))
	return p
}

// UpdateStock fija el stock de un producto y registra el delta como "manual".
// Si el ID no existe no hace nada y devuelve false.
func (s *State) UpdateStock(productID string, quantity int) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfProduct(productID)
	if i < 0 {
		return entity.Product{}, false
	}
	delta := quantity - s.products[i].Stock
	s.products[i].Stock = quantity
	s.prependLog(s.entry(s.products[i].ID, delta, entity.StockChangeManual))
	return s.products[i], true
}

// DeleteProduct quita el producto y registra una entrada "deletion" con cambio 0.
// La entrada se registra aunque el ID no exista; found indica si se quitó algo.
// Las facturas existentes conservan sus líneas desnormalizadas.
func (s *State) DeleteProduct(productID string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.Clone(productID)
	if i := s.indexOfProduct(productID); i >= 0 {
		id = s.products[i].ID
		s.products = append(s.products[:i:i], s.products[i+1:]...)
		found = true
	}
	s.prependLog(s.entry(id, 0, entity.StockChangeDeletion))
	return found
}

// RecordBill inserta la factura al frente y descuenta el stock de cada línea
// cuyo producto exista (sin piso: puede quedar negativo), con una entrada
// "sale" por línea. Las líneas sin producto se conservan en la factura.
func (s *State) RecordBill(bill entity.Bill) entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill = bill.Clone()
	s.bills = append([]entity.Bill{bill}, s.bills...)

	sales := make([]entity.StockLogEntry, 0, len(bill.Items))
	for _, it := range bill.Items {
		i := s.indexOfProduct(it.ProductID)
		if i < 0 {
			continue
		}
		s.products[i].Stock -= it.Quantity
		sales = append(sales, s.entry(it.ProductID, -it.Quantity, entity.StockChangeSale))
	}
	s.log = append(sales, s.log...)
	return bill.Clone()
}

// DeleteBill quita la factura sin revertir el stock ni tocar el historial.
// Si el ID no existe no hace nada y devuelve false.
func (s *State) DeleteBill(billID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		if s.bills[i].ID == billID {
			s.bills = append(s.bills[:i:i], s.bills[i+1:]...)
			return true
		}
	}
	return false
}

// ── Lecturas (copias) ─────────────────────────────────────────────────────────

// Products devuelve una copia del catálogo.
func (s *State) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// Product busca un producto por ID.
func (s *State) Product(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfProduct(id); i >= 0 {
		return s.products[i], true
	}
	return entity.Product{}, false
}

// Bills devuelve una copia de las facturas, más recientes primero.
func (s *State) Bills() []entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Bill, len(s.bills))
	for i, b := range s.bills {
		out[i] = b.Clone()
	}
	return out
}

// Bill busca una factura por ID.
func (s *State) Bill(id string) (entity.Bill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bills {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return entity.Bill{}, false
}

// StockLog devuelve una copia del historial, más reciente primero.
func (s *State) StockLog() []entity.StockLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.StockLogEntry(nil), s.log...)
}

// ── helpers (requieren s.mu) ──────────────────────────────────────────────────

func (s *State) indexOfProduct(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) entry(productID string, change int, kind entity.StockChangeKind) entity.StockLogEntry {
	return entity.StockLogEntry{
		ID:        s.newID(),
		ProductID: productID,
		Change:    change,
		Kind:      kind,
		Date:      s.now().UTC(),
	}
}

func (s *State) prependLog(e entity.StockLogEntry) {
	s.log = append([]entity.StockLogEntry{e}, s.log...)
}
