package dto

import "github.com/shopspring/decimal"

// CreateItemRequest entrada para crear un artículo. InitialStock > 0 genera
// además un movimiento de ajuste que deja rastro del stock semilla.
type CreateItemRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int             `json:"initial_stock"`
}

// UpdateItemRequest entrada para la edición inline: reemplaza todos los
// campos mutables, incluido Stock (sobrescritura directa que NO pasa por el
// log de movimientos).
type UpdateItemRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Supplier string          `json:"supplier"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Supplier string          `json:"supplier"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
