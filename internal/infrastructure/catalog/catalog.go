// Package catalog convierte listas de precios de proveedores (CSV) al catálogo
// JSON que el servidor carga al arrancar.
package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// Valores por defecto para columnas opcionales.
const (
	DefaultCategory     = "General"
	DefaultMinThreshold = 5
	DefaultTaxRate      = 18
)

var requiredColumns = []string{"name", "price"}

// ImportCSV lee un CSV con cabecera. Columnas reconocidas (en cualquier orden):
// name, category, price, stock, min_threshold, gst_rate. Solo name y price son
// obligatorias. Con latin1 el archivo se decodifica desde ISO-8859-1.
func ImportCSV(r io.Reader, latin1 bool) ([]entity.Product, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catálogo: CSV vacío: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("catálogo: leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("catálogo: falta la columna %q: %w", c, domain.ErrInvalidInput)
		}
	}

	var out []entity.Product
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catálogo: línea %d: %w", line, err)
		}
		p, err := parseRecord(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("catálogo: línea %d: %w", line, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseRecord(rec []string, cols map[string]int) (entity.Product, error) {
	field := func(names ...string) string {
		for _, name := range names {
			if i, ok := cols[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
		}
		return ""
	}

	p := entity.Product{
		ID:           uuid.NewString(),
		Name:         field("name"),
		Category:     field("category"),
		MinThreshold: DefaultMinThreshold,
		TaxRate:      decimal.NewFromInt(DefaultTaxRate),
	}
	if p.Name == "" {
		return p, fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil || price.IsNegative() {
		return p, fmt.Errorf("precio inválido %q: %w", field("price"), domain.ErrInvalidInput)
	}
	p.Price = price

	if s := field("stock"); s != "" {
		if p.Stock, err = strconv.Atoi(s); err != nil {
			return p, fmt.Errorf("stock inválido %q: %w", s, domain.ErrInvalidInput)
		}
	}
	if s := field("min_threshold"); s != "" {
		if p.MinThreshold, err = strconv.Atoi(s); err != nil || p.MinThreshold < 0 {
			return p, fmt.Errorf("mínimo inválido %q: %w", s, domain.ErrInvalidInput)
		}
	}
	if s := strings.TrimSuffix(field("gst_rate", "gst"), "%"); s != "" {
		rate, err := decimal.NewFromString(s)
		if err != nil || !entity.IsAllowedTaxRate(rate) {
			return p, fmt.Errorf("GST %q no es 5, 12, 18 ni 28: %w", s, domain.ErrInvalidInput)
		}
		p.TaxRate = rate
	}
	return p, nil
}

// WriteJSON escribe el catálogo indentado.
func WriteJSON(w io.Writer, products []entity.Product) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("catálogo: serializar: %w", err)
	}
	return nil
}

// LoadJSON lee un catálogo generado por WriteJSON. Los productos sin ID
// reciben uno nuevo y las tarifas de GST se validan.
func LoadJSON(path string) ([]entity.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catálogo: leer %s: %w", path, err)
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catálogo: %s no es JSON válido: %w", path, err)
	}
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
		if !entity.IsAllowedTaxRate(products[i].TaxRate) {
			return nil, fmt.Errorf("catálogo: %q con GST %s: %w", products[i].Name, products[i].TaxRate, domain.ErrInvalidInput)
		}
	}
	return products, nil
}
