package model

import "time"

type PropertyImage struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	PropertyID uint    `json:"property_id" gorm:"not null;index"`
	ImageURL   string  `json:"image_url" gorm:"size:500;not null"`
	Caption    *string `json:"caption" gorm:"size:200"`

	// The first image uploaded for a property is its primary image.
	IsPrimary    bool `json:"is_primary" gorm:"default:false"`
	DisplayOrder int  `json:"display_order" gorm:"default:0"`

	CreatedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`

	Property Property `json:"-" gorm:"foreignKey:PropertyID"`
}
