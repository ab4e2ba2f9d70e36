package config

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// jsonbBytes normalizes the raw value a jsonb column scans back as.
func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported jsonb source type")
	}
}

// StringList is an ordered list of strings stored verbatim as jsonb,
// used for product image lists and amenities.
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}

// VendorSnapshot is the vendor profile frozen onto a product at creation
// time. It is never re-derived from a later vendor lookup.
type VendorSnapshot struct {
	StoreName  string `json:"store_name"`
	StorePhone string `json:"store_phone"`
	Email      string `json:"email"`
	StoreID    string `json:"store_id"`
	Image      string `json:"image"`
}

func (s *VendorSnapshot) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, s)
}

func (s VendorSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (VendorSnapshot) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}

// RealEstateDetails is required when the owning vendor's brand type is
// Real Estate, absent otherwise.
type RealEstateDetails struct {
	ProductBeds  float64 `json:"productBeds"`
	ProductBaths float64 `json:"productBaths"`
	PropertyArea float64 `json:"propertyArea"`
}

func (r *RealEstateDetails) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, r)
}

func (r RealEstateDetails) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (RealEstateDetails) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}

// ClientDetails is the checkout contact/shipping block, stored on the
// order exactly as submitted.
type ClientDetails struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=32"`
	LastName  string `json:"lastName" validate:"required,min=2,max=32"`
	Email     string `json:"email" validate:"required,email,max=256"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Address   string `json:"address" validate:"required,min=6,max=128"`
	City      string `json:"city" validate:"required,max=64"`
	Country   string `json:"country" validate:"required,max=64"`
	Postcode  string `json:"postcode" validate:"omitempty,max=16"`
}

func (c *ClientDetails) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, c)
}

func (c ClientDetails) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (ClientDetails) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}

// CartItem is one cart line as submitted by the client.
type CartItem struct {
	Slug        string  `json:"slug" validate:"required,max=256"`
	ProductName string  `json:"productName" validate:"required,max=128"`
	Qty         uint    `json:"qty" validate:"required,gte=1"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type CartItems []CartItem

func (c *CartItems) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, c)
}

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (CartItems) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}

// VendorRef names the vendor and product a cart line resolved to. One
// entry is recorded per cart line, lines are not deduplicated.
type VendorRef struct {
	StoreID     string `json:"store_id"`
	StoreName   string `json:"store_name"`
	ProductName string `json:"productName"`
}

type VendorRefs []VendorRef

func (v *VendorRefs) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (v VendorRefs) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (VendorRefs) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "jsonb"
}
