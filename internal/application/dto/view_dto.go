package dto

import "github.com/shopspring/decimal"

// ItemRowDTO fila de la tabla de artículos, lista para pintar: incluye el
// valor de stock, la marca de stock bajo y los importes formateados en EUR.
type ItemRowDTO struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Value        decimal.Decimal `json:"value"` // stock × costo
	LowStock     bool            `json:"low_stock"`
	CostDisplay  string          `json:"cost_display"`
	PriceDisplay string          `json:"price_display"`
	ValueDisplay string          `json:"value_display"`
}

// MovementRowDTO fila de la historia. SKU/ItemName caen al marcador de
// artículo eliminado cuando la referencia quedó colgante.
type MovementRowDTO struct {
	ID           string          `json:"id"`
	TS           int64           `json:"ts"`
	DateDisplay  string          `json:"date_display"`
	Type         string          `json:"type"`
	TypeLabel    string          `json:"type_label"`
	SKU          string          `json:"sku"`
	ItemName     string          `json:"item_name"`
	Qty          int             `json:"qty"`
	Unit         decimal.Decimal `json:"unit"`
	Total        decimal.Decimal `json:"total"`
	UnitDisplay  string          `json:"unit_display"`
	TotalDisplay string          `json:"total_display"`
	Note         string          `json:"note"`
}

// KPIsDTO indicadores recalculados en cada render.
type KPIsDTO struct {
	ItemCount       int             `json:"item_count"`
	TotalStockUnits int             `json:"total_stock_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"` // Σ stock × costo
	Revenue         decimal.Decimal `json:"revenue"`         // Σ |qty| × unit sobre ventas
	ValueDisplay    string          `json:"inventory_value_display"`
	RevenueDisplay  string          `json:"revenue_display"`
}

// ItemsViewResponse respuesta de GET /api/items.
type ItemsViewResponse struct {
	Rows []ItemRowDTO `json:"rows"`
	KPIs KPIsDTO      `json:"kpis"`
}

// MovementsViewResponse respuesta de GET /api/movements.
type MovementsViewResponse struct {
	Rows []MovementRowDTO `json:"rows"`
}
