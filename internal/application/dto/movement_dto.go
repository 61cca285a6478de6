package dto

import "github.com/shopspring/decimal"

// RecordMovementRequest body para POST /api/movements.
// Unit en nil toma el precio del artículo (venta) o su costo (compra/ajuste).
type RecordMovementRequest struct {
	ItemID string           `json:"item_id"`
	Type   string           `json:"type"` // purchase | sale | adjust
	Qty    int              `json:"qty"`
	Unit   *decimal.Decimal `json:"unit,omitempty"`
	Note   string           `json:"note"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID     string          `json:"id"`
	TS     int64           `json:"ts"`
	Type   string          `json:"type"`
	ItemID string          `json:"item_id"`
	Qty    int             `json:"qty"`
	Unit   decimal.Decimal `json:"unit"`
	Note   string          `json:"note"`
}

// ImportSummary resultado de un import CSV (mezcla, nunca sobrescribe).
type ImportSummary struct {
	ItemsAdded   int `json:"items_added"`
	ItemsSkipped int `json:"items_skipped"`
	MovesAdded   int `json:"moves_added"`
	MovesSkipped int `json:"moves_skipped"`
}
