// catalog_import convierte una lista de precios CSV de un proveedor en el
// catálogo JSON que el servidor carga con CATALOG_PATH.
//
// Uso: go run ./cmd/catalog_import [-latin1] entrada.csv [salida.json]
// Por defecto escribe catalog.json en el directorio actual.
// Columnas: name, price (obligatorias); category, stock, min_threshold, gst_rate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/bike-ledgers/internal/infrastructure/catalog"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está codificado en ISO-8859-1")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "uso: catalog_import [-latin1] entrada.csv [salida.json]")
		os.Exit(2)
	}
	outPath := "catalog.json"
	if flag.NArg() > 1 {
		outPath = flag.Arg(1)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	products, err := catalog.ImportCSV(in, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear %s: %v\n", outPath, err)
		os.Exit(1)
	}
	if err := catalog.WriteJSON(out, products); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Escribir: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Cerrar %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Escrito: %s (%d productos)\n", outPath, len(products))
}
