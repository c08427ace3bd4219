package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/service"
	"estatedesk_backend/pkg/database"
)

// SearchProperties handles the public listing page: filtered, sorted,
// paginated Available listings plus the global filter facets.
func SearchProperties(c *fiber.Ctx) error {
	params := service.SearchParams{}
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid search parameters",
		})
	}

	db := database.GetDB()

	result, err := service.SearchProperties(db, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not search properties",
		})
	}

	facets, err := service.PropertyFacets(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load filter options",
		})
	}

	return c.JSON(fiber.Map{
		"properties":    result.Properties,
		"total_results": result.TotalResults,
		"total_pages":   result.TotalPages,
		"page_number":   result.PageNumber,
		"page_size":     result.PageSize,
		"facets":        facets,
	})
}

// GetFeaturedProperties serves the landing-page selection of six.
func GetFeaturedProperties(c *fiber.Ctx) error {
	properties, err := service.FeaturedProperties(database.GetDB(), service.FeaturedHomeLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch featured properties",
		})
	}

	return c.JSON(properties)
}

// GetProperty serves the detail page, bumps the view counter and
// attaches related listings.
func GetProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	db := database.GetDB()

	property, err := service.GetProperty(db, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	if err := service.IncrementViewCount(db, property.ID); err != nil {
		log.Printf("Could not record view for property %d: %v", property.ID, err)
	} else {
		property.ViewCount++
	}

	related, err := service.RelatedProperties(db, property)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch related properties",
		})
	}

	return c.JSON(fiber.Map{
		"property": property,
		"related":  related,
	})
}

// GetPropertyBySlug resolves a listing by its URL slug.
func GetPropertyBySlug(c *fiber.Ctx) error {
	var property model.Property
	err := database.GetDB().Where("slug = ?", c.Params("slug")).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.display_order ASC")
		}).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	if err := service.IncrementViewCount(database.GetDB(), property.ID); err == nil {
		property.ViewCount++
	}

	return c.JSON(property)
}
