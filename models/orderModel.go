package models

import (
	"time"

	"github.com/azharhussaincs/prohomezmain/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is immutable once created. OrderID is the short human-facing
// code, Reference is the enforced-unique key.
type Order struct {
	gorm.Model
	Reference     uuid.UUID            `gorm:"type:uuid;uniqueIndex" json:"reference"`
	OrderID       string               `gorm:"column:order_id;size:8;uniqueIndex" json:"order_id"`
	ClientDetails config.ClientDetails `gorm:"type:jsonb" json:"client_details"`
	CartItems     config.CartItems     `gorm:"type:jsonb" json:"cart_items"`
	TotalCost     float64              `json:"total_cost"`
	VendorDetails config.VendorRefs    `gorm:"type:jsonb" json:"vendor_details"`
	OrderDate     time.Time            `json:"order_date"`
}
