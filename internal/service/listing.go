package service

import (
	"errors"

	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
)

const RelatedPropertiesLimit = 3

// GetProperty loads a listing with its images in display order.
func GetProperty(db *gorm.DB, id uint) (*model.Property, error) {
	var property model.Property
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("property_images.display_order ASC")
	}).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// IncrementViewCount bumps the detail-page counter. Concurrent views
// may race; at-least-once counting is enough here.
func IncrementViewCount(db *gorm.DB, id uint) error {
	return db.Model(&model.Property{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// RelatedProperties returns up to three other Available listings of the
// same type, featured ones first.
func RelatedProperties(db *gorm.DB, property *model.Property) ([]model.Property, error) {
	related := []model.Property{}
	err := db.Where("property_type = ? AND id <> ? AND status = ?",
		property.PropertyType, property.ID, model.PropertyStatusAvailable).
		Order("is_featured desc").
		Limit(RelatedPropertiesLimit).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.display_order ASC")
		}).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

// DeleteProperty removes a listing in one transaction: its images are
// cascade-deleted, its inquiries survive with the property reference
// nullified. The caller removes the image files afterwards.
func DeleteProperty(db *gorm.DB, id uint) ([]model.PropertyImage, error) {
	var images []model.PropertyImage

	err := db.Transaction(func(tx *gorm.DB) error {
		var property model.Property
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("property_id = ?", id).Find(&images).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Inquiry{}).Where("property_id = ?", id).
			Update("property_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&property).Error
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

// DeleteUser removes a user; their inquiries survive with the user
// reference nullified, never cascade-deleted.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&model.Inquiry{}).Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}

// AddPropertyImage appends an image row after its file has been
// written. The first image for a property becomes primary and orders
// start at 1.
func AddPropertyImage(db *gorm.DB, propertyID uint, imageURL string, caption *string) (*model.PropertyImage, error) {
	var count int64
	if err := db.Model(&model.PropertyImage{}).Where("property_id = ?", propertyID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	image := model.PropertyImage{
		PropertyID:   propertyID,
		ImageURL:     imageURL,
		Caption:      caption,
		IsPrimary:    count == 0,
		DisplayOrder: int(count) + 1,
	}

	if err := db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// DeletePropertyImage removes an image row. When the primary image is
// deleted, the lowest remaining display order is promoted so each
// property keeps exactly one primary image.
func DeletePropertyImage(db *gorm.DB, imageID uint) (*model.PropertyImage, error) {
	var image model.PropertyImage
	if err := db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&image).Error; err != nil {
			return err
		}

		if !image.IsPrimary {
			return nil
		}

		var next model.PropertyImage
		err := tx.Where("property_id = ?", image.PropertyID).
			Order("display_order ASC").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&next).Update("is_primary", true).Error
	})
	if err != nil {
		return nil, err
	}

	return &image, nil
}
