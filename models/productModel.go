package models

import (
	"github.com/azharhussaincs/prohomezmain/config"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	ProductName        string                    `gorm:"size:128" json:"productName"`
	ProductPrice       float64                   `json:"productPrice"`
	DiscountedPrice    *float64                  `json:"discountedPrice"`
	ProductDescription string                    `gorm:"type:text;not null" json:"productDescription"`
	SelectedCategory   string                    `gorm:"size:64" json:"selectedCategory"`
	MainCategory       string                    `gorm:"size:64" json:"mainCategory"`
	SelectedImages     config.StringList         `gorm:"type:jsonb" json:"selectedImages"`
	FeatureImage       string                    `json:"featureImage"`
	StoreID            string                    `gorm:"size:64;index" json:"storeId"`
	Slug               string                    `gorm:"uniqueIndex;size:256" json:"slug"`
	NumberOfReviews    uint                      `json:"numberOfReviews"`
	VendorDetails      config.VendorSnapshot     `gorm:"type:jsonb" json:"vendorDetails"`
	RealEstateDetails  *config.RealEstateDetails `gorm:"type:jsonb" json:"realEstateDetails"`
	Amenities          config.StringList         `gorm:"type:jsonb" json:"amenities"`
}
