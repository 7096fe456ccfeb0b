// seed_catalog genera el script SQL que puebla categorías, marcas e ítems
// a partir de un CSV exportado de la planilla de inventario.
//
// Formato: categoria;marca;nombre;descripcion (primera fila de encabezado opcional).
// Acepta UTF-8 o ISO-8859-1 (exportación de Excel en Windows).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogRow struct {
	category    string
	brand       string
	name        string
	description string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	rows, err := parseCatalog(decodeLatin1(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d ítems\n", outPath, len(rows))
}

// decodeLatin1 devuelve un reader UTF-8; si el contenido no es UTF-8 válido se asume ISO-8859-1.
func decodeLatin1(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parseCatalog(r io.Reader) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []catalogRow
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(rec) < 3 {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "categoria") {
			continue
		}
		row := catalogRow{
			category: strings.TrimSpace(rec[0]),
			brand:    strings.TrimSpace(rec[1]),
			name:     strings.TrimSpace(rec[2]),
		}
		if len(rec) > 3 {
			row.description = strings.TrimSpace(rec[3])
		}
		if row.category == "" || row.brand == "" || row.name == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeSQL(w io.Writer, rows []catalogRow) error {
	categories := uniqueSorted(rows, func(r catalogRow) string { return r.category })
	brands := uniqueSorted(rows, func(r catalogRow) string { return r.brand })

	var b strings.Builder
	b.WriteString("-- Catálogo inicial: categorías, marcas e ítems\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	b.WriteString("-- 1. Categorías\n")
	writeNamed(&b, "categories", categories)
	b.WriteString("-- 2. Marcas\n")
	writeNamed(&b, "brands", brands)

	b.WriteString("-- 3. Ítems\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "INSERT INTO items (name, description, category_id, brand_id)\n")
		fmt.Fprintf(&b, "SELECT '%s', '%s', c.id, b.id FROM categories c, brands b WHERE c.name = '%s' AND b.name = '%s'\n",
			escapeSQL(r.name), escapeSQL(r.description), escapeSQL(r.category), escapeSQL(r.brand))
		b.WriteString("ON CONFLICT (name, brand_id) DO UPDATE SET description = EXCLUDED.description, category_id = EXCLUDED.category_id;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNamed(b *strings.Builder, table string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "INSERT INTO %s (name) VALUES\n", table)
	for i, n := range names {
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "  ('%s')%s\n", escapeSQL(n), sep)
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
}

func uniqueSorted(rows []catalogRow, key func(catalogRow) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
