package model

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "House"
	PropertyTypeApartment  PropertyType = "Apartment"
	PropertyTypeCondo      PropertyType = "Condo"
	PropertyTypeTownhouse  PropertyType = "Townhouse"
	PropertyTypeLand       PropertyType = "Land"
	PropertyTypeCommercial PropertyType = "Commercial"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusSold      PropertyStatus = "Sold"
	PropertyStatusPending   PropertyStatus = "Pending"
	PropertyStatusRented    PropertyStatus = "Rented"
)

type Property struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	PropertyType string  `json:"property_type" gorm:"size:50;not null"`
	Price        float64 `json:"price" gorm:"not null"`

	// Location fields
	Address string `json:"address" gorm:"size:200;not null"`
	City    string `json:"city" gorm:"size:100;not null"`
	State   string `json:"state" gorm:"size:100;not null"`
	ZipCode string `json:"zip_code" gorm:"size:20;not null"`

	// Feature fields
	Bedrooms     int     `json:"bedrooms" gorm:"not null"`
	Bathrooms    int     `json:"bathrooms" gorm:"not null"`
	Area         float64 `json:"area" gorm:"not null"`
	YearBuilt    *int    `json:"year_built"`
	GarageSpaces *int    `json:"garage_spaces"`

	// Lifecycle fields
	Status     PropertyStatus `json:"status" gorm:"size:50;default:'Available'"`
	IsFeatured bool           `json:"is_featured" gorm:"default:false"`
	ViewCount  int            `json:"view_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at"`

	Images    []PropertyImage `json:"images" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Inquiries []Inquiry       `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
}

// ValidPropertyType reports whether s names one of the known listing
// types.
func ValidPropertyType(s string) bool {
	switch PropertyType(s) {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo,
		PropertyTypeTownhouse, PropertyTypeLand, PropertyTypeCommercial:
		return true
	}
	return false
}

func (p *Property) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode)
}

// BeforeCreate generates a URL slug from the title, suffixed with a
// counter when another property already claimed it.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}

	base := slug.Make(p.Title)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := tx.Model(&Property{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	p.Slug = candidate
	return nil
}
