package models

import "time"

type Media struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Image   string    `gorm:"size:256" json:"image"`
	StoreID string    `gorm:"size:64;index" json:"store_id"`
	Date    time.Time `gorm:"column:date" json:"date"`
}
