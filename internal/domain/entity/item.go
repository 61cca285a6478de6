package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// El snapshot guarda cost/price/unit como números JSON planos; sin esto
	// shopspring los serializa entre comillas y los archivos stockpilot.json
	// existentes dejarían de ser intercambiables.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item representa un artículo del inventario. Stock se mantiene de forma
// incremental vía movimientos (o por edición directa, ver UpdateItem) y
// nunca se recalcula desde la historia.
type Item struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"` // único, sin distinguir mayúsculas
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Supplier string          `json:"supplier"`
	Cost     decimal.Decimal `json:"cost"`  // costo unitario
	Price    decimal.Decimal `json:"price"` // precio de venta
	Stock    int             `json:"stock"` // nunca negativo
}

// MatchesQuery indica si el artículo coincide con el texto de búsqueda
// (subcadena, sin distinguir mayúsculas, sobre sku/name/category/supplier).
func (i *Item) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(i.SKU), q) ||
		strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Category), q) ||
		strings.Contains(strings.ToLower(i.Supplier), q)
}

// StockValue devuelve stock × costo.
func (i *Item) StockValue() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(int64(i.Stock)))
}
