package models

import "gorm.io/gorm"

type Vendor struct {
	gorm.Model
	FirstName    string `gorm:"size:128" json:"first_name"`
	LastName     string `gorm:"size:128" json:"last_name"`
	StoreName    string `gorm:"size:128" json:"store_name"`
	StoreID      string `gorm:"uniqueIndex;size:64" json:"store_id"`
	Address1     string `gorm:"size:128" json:"address1"`
	Address2     string `gorm:"size:128" json:"address2"`
	City         string `gorm:"size:64" json:"city"`
	StateCounty  string `gorm:"size:64" json:"state_county"`
	Country      string `gorm:"size:64" json:"country"`
	Postcode     string `gorm:"size:16" json:"postcode"`
	StorePhone   string `gorm:"size:20" json:"store_phone"`
	BrandType    string `gorm:"size:64" json:"brand_type"`
	Email        string `gorm:"unique;size:256" json:"email"`
	Password     string `gorm:"size:256" json:"-"`
	Image        string `json:"image"`
	VendorStatus string `gorm:"size:16;default:pending" json:"vendor_status"`
	IsAdmin      bool   `json:"isAdmin"`
}
