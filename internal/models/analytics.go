package models

// Analytics is a per-day aggregate snapshot backing the admin dashboard.
// One row exists per calendar date (YYYY-MM-DD).
type Analytics struct {
	BaseModel
	Date                 string `gorm:"uniqueIndex;size:20" json:"date"`
	TotalOrders          int    `gorm:"default:0" json:"total_orders"`
	TotalRevenue         string `gorm:"size:20;default:0" json:"total_revenue"`
	SuccessfulDeliveries int    `gorm:"default:0" json:"successful_deliveries"`
	FailedDeliveries     int    `gorm:"default:0" json:"failed_deliveries"`
	WarehouseOrders      int    `gorm:"default:0" json:"warehouse_orders"`
	ShipOrders           int    `gorm:"default:0" json:"ship_orders"`
}
