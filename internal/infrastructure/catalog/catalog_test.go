package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/infrastructure/catalog"
)

func TestImportCSV_ColumnasYValoresPorDefecto(t *testing.T) {
	in := "price,name,category,stock,min_threshold,gst_rate\n" +
		"850,Engine Oil 1L,Lubricants,25,10,18\n" +
		"120.50, Spark Plug ,,50,,28%\n"

	products, err := catalog.ImportCSV(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Engine Oil 1L", products[0].Name)
	assert.Equal(t, 25, products[0].Stock)
	assert.Equal(t, 10, products[0].MinThreshold)
	assert.NotEmpty(t, products[0].ID)

	assert.Equal(t, "Spark Plug", products[1].Name)
	assert.Equal(t, catalog.DefaultCategory, products[1].Category)
	assert.Equal(t, catalog.DefaultMinThreshold, products[1].MinThreshold)
	assert.Equal(t, "120.5", products[1].Price.String())
	assert.Equal(t, "28", products[1].TaxRate.String())
	assert.NotEqual(t, products[0].ID, products[1].ID)
}

func TestImportCSV_Latin1(t *testing.T) {
	utf8 := "name,price\nCadena reforzada señal,300\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	products, err := catalog.ImportCSV(strings.NewReader(latin), true)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cadena reforzada señal", products[0].Name)
}

func TestImportCSV_Rechazos(t *testing.T) {
	cases := map[string]string{
		"vacío":           "",
		"sin precio":      "name\nX\n",
		"precio malo":     "name,price\nX,abc\n",
		"gst no válido":   "name,price,gst_rate\nX,10,19\n",
		"stock no entero": "name,price,stock\nX,10,1.5\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.ImportCSV(strings.NewReader(in), false)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestImportCSV_AceptaColumnaGST(t *testing.T) {
	products, err := catalog.ImportCSV(strings.NewReader("name,price,gst\nMirror,180,12%\nGrip,90,5\n"), false)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].TaxRate.Equal(decimal.NewFromInt(12)))
	assert.True(t, products[1].TaxRate.Equal(decimal.NewFromInt(5)))
}

func TestWriteJSONYLoadJSON(t *testing.T) {
	products, err := catalog.ImportCSV(strings.NewReader("name,price,gst_rate\nMirror,180,12\n"), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, catalog.WriteJSON(&buf, products))
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := catalog.LoadJSON(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, products[0].ID, loaded[0].ID)
	assert.True(t, products[0].Price.Equal(loaded[0].Price))
}

func TestLoadJSON_AsignaIDYValidaGST(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.json")
	require.NoError(t, os.WriteFile(ok, []byte(`[{"name":"A","price":"1","gst_rate":"5"}]`), 0o600))
	loaded, err := catalog.LoadJSON(ok)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded[0].ID)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name":"A","price":"1","gst_rate":"19"}]`), 0o600))
	_, err = catalog.LoadJSON(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
