package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/service"
	"estatedesk_backend/pkg/database"
	"estatedesk_backend/pkg/utils/storage"
	"estatedesk_backend/pkg/utils/validation"
)

// StaticRoot is set at startup; property image files live beneath it.
var StaticRoot = "./public"

type PropertyInput struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  string  `json:"description" validate:"required,max=2000"`
	PropertyType string  `json:"property_type" validate:"required,max=50"`
	Price        float64 `json:"price" validate:"required,gte=0"`
	Address      string  `json:"address" validate:"required,max=200"`
	City         string  `json:"city" validate:"required,max=100"`
	State        string  `json:"state" validate:"required,max=100"`
	ZipCode      string  `json:"zip_code" validate:"required,max=20"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0,lte=100"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0,lte=100"`
	Area         float64 `json:"area" validate:"required,gte=0"`
	YearBuilt    *int    `json:"year_built" validate:"omitempty,gte=0"`
	GarageSpaces *int    `json:"garage_spaces" validate:"omitempty,gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=Available Sold Pending Rented"`
	IsFeatured   bool    `json:"is_featured"`
}

// ListAllProperties returns every listing for the admin screen,
// regardless of status.
func ListAllProperties(c *fiber.Ctx) error {
	properties := []model.Property{}
	err := database.GetDB().
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.display_order ASC")
		}).
		Order("created_at desc").
		Find(&properties).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	return c.JSON(properties)
}

func GetAdminProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	var property model.Property
	err = database.GetDB().
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.display_order ASC")
		}).
		Preload("Inquiries").
		First(&property, id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	return c.JSON(property)
}

func CreateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fields := validation.ValidateStruct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	if !model.ValidPropertyType(input.PropertyType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"property_type": "Unknown property type"},
		})
	}

	status := model.PropertyStatus(input.Status)
	if input.Status == "" {
		status = model.PropertyStatusAvailable
	}

	property := model.Property{
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Area:         input.Area,
		YearBuilt:    input.YearBuilt,
		GarageSpaces: input.GarageSpaces,
		Status:       status,
		IsFeatured:   input.IsFeatured,
	}

	if err := database.GetDB().Create(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}

	log.Printf("Property created: %s (ID: %d) at %s", property.Title, property.ID, property.FullAddress())

	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty replaces the listing fields while preserving the
// creation date and view counter. A row deleted between read and write
// surfaces as not-found.
func UpdateProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fields := validation.ValidateStruct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	if !model.ValidPropertyType(input.PropertyType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"property_type": "Unknown property type"},
		})
	}

	db := database.GetDB()

	var property model.Property
	if err := db.First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	property.Title = input.Title
	property.Description = input.Description
	property.PropertyType = input.PropertyType
	property.Price = input.Price
	property.Address = input.Address
	property.City = input.City
	property.State = input.State
	property.ZipCode = input.ZipCode
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Area = input.Area
	property.YearBuilt = input.YearBuilt
	property.GarageSpaces = input.GarageSpaces
	if input.Status != "" {
		property.Status = model.PropertyStatus(input.Status)
	}
	property.IsFeatured = input.IsFeatured
	property.UpdatedAt = time.Now()

	result := db.Model(&model.Property{}).Where("id = ?", property.ID).
		Select("*").Omit("id", "slug", "created_at", "view_count").
		Updates(&property)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update property",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("property_images.display_order ASC")
	}).First(&property, property.ID)

	log.Printf("Property updated: %s (ID: %d)", property.Title, property.ID)

	return c.JSON(property)
}

func DeleteProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	images, err := service.DeleteProperty(database.GetDB(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	// Remove files only after the rows are gone
	for _, image := range images {
		if err := storage.DeleteImage(StaticRoot, image.ImageURL); err != nil {
			log.Printf("Could not delete image file %s: %v", image.ImageURL, err)
		}
	}

	log.Printf("Property deleted: ID %d", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPropertyImages accepts one or more files under the "images"
// multipart field. Each file is written to disk first, then recorded;
// the two steps are not transactional.
func UploadPropertyImages(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	db := database.GetDB()

	var property model.Property
	if err := db.First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No images uploaded",
		})
	}

	uploaded := []model.PropertyImage{}
	for _, file := range form.File["images"] {
		url, err := storage.SaveImage(file, StaticRoot, property.ID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		image, err := service.AddPropertyImage(db, property.ID, url, nil)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save image record",
			})
		}
		uploaded = append(uploaded, *image)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Images uploaded successfully",
		"images":  uploaded,
	})
}

func DeletePropertyImage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("image_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid image ID",
		})
	}

	image, err := service.DeletePropertyImage(database.GetDB(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	if err := storage.DeleteImage(StaticRoot, image.ImageURL); err != nil {
		log.Printf("Could not delete image file %s: %v", image.ImageURL, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
