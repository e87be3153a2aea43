// Package models holds the GORM models for the location tables.
package models

import "time"

// Location is one shelf position in a store. Rows are mutated in place as
// items are resolved or archived; they are never deleted.
type Location struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	UPC          string    `gorm:"column:upc"`
	Name         string    `gorm:"column:name"`
	Store        string    `gorm:"column:store"`
	Level        string    `gorm:"column:level"`
	Row          string    `gorm:"column:row"`
	Side         string    `gorm:"column:side"`
	Column       string    `gorm:"column:column"`
	Shelf        string    `gorm:"column:shelf"`
	Bin          string    `gorm:"column:bin"`
	FullLocation string    `gorm:"column:full_location"`
	UpdatedBy    string    `gorm:"column:updated_by"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
	CreatedBy    string    `gorm:"column:created_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	IsArchived   int16     `gorm:"column:is_archived"`
}

// TableName overrides the GORM naming convention.
func (Location) TableName() string {
	return "locations"
}

// CatalogItem is one entry in the master item catalog used to resolve
// placeholder location names.
type CatalogItem struct {
	ID          int    `gorm:"column:id;primaryKey"`
	UPC         string `gorm:"column:upc"`
	SKU         string `gorm:"column:sku"`
	Item        string `gorm:"column:item"`
	Description string `gorm:"column:description"`
	Pack        int    `gorm:"column:pack"`
}

// TableName overrides the GORM naming convention.
func (CatalogItem) TableName() string {
	return "inventory"
}
