package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypePurchase = "purchase" // compra: cantidad forzada positiva
	MovementTypeSale     = "sale"     // venta: cantidad forzada negativa
	MovementTypeAdjust   = "adjust"   // ajuste: cantidad tal cual (+/-)
)

// ValidMovementType indica si t es uno de los tres tipos conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypePurchase || t == MovementTypeSale || t == MovementTypeAdjust
}

// Movement es un registro inmutable de cambio de stock. Solo admite borrado,
// y borrarlo NO revierte su efecto sobre el stock del artículo (política
// explícita de no-rebalanceo; el stock puede divergir de la historia).
//
// TS va en milisegundos unix, el formato que persiste y consume el cliente web.
type Movement struct {
	ID     string          `json:"id"`
	TS     int64           `json:"ts"`
	Type   string          `json:"type"`
	ItemID string          `json:"itemId"` // puede quedar colgante si el artículo se borra
	Qty    int             `json:"qty"`    // con signo: + compra/ajuste, - venta
	Unit   decimal.Decimal `json:"unit"`   // precio unitario al momento del movimiento
	Note   string          `json:"note"`
}

// Time devuelve la marca de tiempo como time.Time.
func (m *Movement) Time() time.Time {
	return time.UnixMilli(m.TS)
}

// Total devuelve qty × unit (con signo).
func (m *Movement) Total() decimal.Decimal {
	return m.Unit.Mul(decimal.NewFromInt(int64(m.Qty)))
}
