// Package csvio serializa y deserializa el snapshot a un CSV de dos
// secciones:
//
//	SECTION,items
//	id,sku,name,category,supplier,cost,price,stock
//	...filas...
//
//	SECTION,moves
//	id,ts,type,itemId,qty,unit,note
//	...filas...
//
// El import usa un escáner de un solo paso, permisivo: campos entrecomillados
// con comillas dobladas y saltos de línea/comas embebidos, división por comas
// y saltos sin comillas, \r ignorado, valores recortados y filas en blanco
// descartadas. encoding/csv no expresa este dialecto por secciones ni sus
// reglas de recorte, de ahí el escáner propio.
package csvio

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

const (
	sectionMarker = "SECTION"
	sectionItems  = "items"
	sectionMoves  = "moves"
)

// Filename genera el nombre de descarga: stockpilot_export_<fecha-ISO>.csv.
func Filename(t time.Time) string {
	return "stockpilot_export_" + t.UTC().Format("2006-01-02") + ".csv"
}

// Export produce el documento CSV de dos secciones.
func Export(snap *entity.Snapshot) string {
	var b strings.Builder

	b.WriteString(sectionMarker + "," + sectionItems + "\n")
	b.WriteString("id,sku,name,category,supplier,cost,price,stock\n")
	for _, it := range snap.Items {
		fields := []string{
			it.ID,
			quote(it.SKU),
			quote(it.Name),
			quote(it.Category),
			quote(it.Supplier),
			it.Cost.String(),
			it.Price.String(),
			strconv.Itoa(it.Stock),
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionMarker + "," + sectionMoves + "\n")
	b.WriteString("id,ts,type,itemId,qty,unit,note\n")
	for _, m := range snap.Moves {
		fields := []string{
			m.ID,
			strconv.FormatInt(m.TS, 10),
			m.Type,
			m.ItemID,
			strconv.Itoa(m.Qty),
			m.Unit.String(),
			quote(m.Note),
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}

	return b.String()
}

// Import deserializa el documento. Las filas malformadas se saltan en
// silencio; las reglas de mezcla (ids/SKUs ya existentes) las aplica el
// almacén, no el codec.
func Import(text string) ([]*entity.Item, []*entity.Movement) {
	var items []*entity.Item
	var moves []*entity.Movement

	section := ""
	for _, row := range parseRows(text) {
		if row[0] == sectionMarker {
			section = ""
			if len(row) > 1 {
				section = row[1]
			}
			continue
		}
		if section == "" || row[0] == "id" { // fuera de sección o cabecera
			continue
		}

		switch section {
		case sectionItems:
			if it := parseItemRow(row); it != nil {
				items = append(items, it)
			}
		case sectionMoves:
			if m := parseMoveRow(row); m != nil {
				moves = append(moves, m)
			}
		}
	}

	return items, moves
}

func parseItemRow(row []string) *entity.Item {
	if len(row) < 8 {
		return nil
	}
	id, sku, name := row[0], row[1], row[2]
	if id == "" || sku == "" || name == "" {
		return nil
	}
	return &entity.Item{
		ID:       id,
		SKU:      sku,
		Name:     name,
		Category: row[3],
		Supplier: row[4],
		Cost:     toDecimal(row[5]),
		Price:    toDecimal(row[6]),
		Stock:    toInt(row[7]),
	}
}

func parseMoveRow(row []string) *entity.Movement {
	if len(row) < 7 {
		return nil
	}
	id, ts, typ, itemID := row[0], row[1], row[2], row[3]
	if id == "" || ts == "" || typ == "" || itemID == "" {
		return nil
	}
	tsn, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil
	}
	return &entity.Movement{
		ID:     id,
		TS:     tsn,
		Type:   typ,
		ItemID: itemID,
		Qty:    toInt(row[4]),
		Unit:   toDecimal(row[5]),
		Note:   row[6],
	}
}

// quote envuelve en comillas cuando el campo contiene coma, comilla o salto
// de línea; las comillas embebidas se doblan (estilo RFC 4180).
func quote(s string) string {
	if strings.ContainsAny(s, "\",\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// parseRows es el escáner de un solo paso sobre el texto completo.
func parseRows(text string) [][]string {
	var rows [][]string
	var row []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inQuotes {
			if ch == '"' && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			if ch == '"' {
				inQuotes = false
				continue
			}
			cur.WriteRune(ch)
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, cur.String())
			cur.Reset()
		case '\n':
			row = append(row, cur.String())
			cur.Reset()
			rows = append(rows, row)
			row = nil
		case '\r':
			// ignorado
		default:
			cur.WriteRune(ch)
		}
	}
	row = append(row, cur.String())
	rows = append(rows, row)

	// Recortar valores y descartar filas completamente en blanco.
	out := rows[:0]
	for _, r := range rows {
		blank := true
		for i := range r {
			r[i] = strings.TrimSpace(r[i])
			if r[i] != "" {
				blank = false
			}
		}
		if !blank {
			out = append(out, r)
		}
	}
	return out
}

// toDecimal convierte permisivamente: coma decimal aceptada, inválido → 0.
func toDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toInt convierte permisivamente: inválido → 0, fracciones truncadas.
func toInt(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err == nil {
		return int(d.IntPart())
	}
	return 0
}
