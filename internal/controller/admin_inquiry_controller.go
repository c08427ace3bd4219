package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/pkg/database"
)

// ListInquiries returns all inquiries, newest first, optionally
// filtered by read/resolution state.
func ListInquiries(c *fiber.Ctx) error {
	query := database.GetDB().Model(&model.Inquiry{}).
		Preload("User").
		Preload("Property")

	switch c.Query("filter") {
	case "unread":
		query = query.Where("is_read = ?", false)
	case "read":
		query = query.Where("is_read = ?", true)
	case "resolved":
		query = query.Where("is_resolved = ?", true)
	case "pending":
		query = query.Where("is_resolved = ?", false)
	}

	inquiries := []model.Inquiry{}
	if err := query.Order("created_at desc").Find(&inquiries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch inquiries",
		})
	}

	return c.JSON(inquiries)
}

// GetInquiry returns one inquiry and marks it read on first view.
func GetInquiry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	db := database.GetDB()

	var inquiry model.Inquiry
	if err := db.Preload("User").Preload("Property").First(&inquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}

	if !inquiry.IsRead {
		if err := db.Model(&inquiry).Update("is_read", true).Error; err != nil {
			log.Printf("Could not mark inquiry %d as read: %v", inquiry.ID, err)
		}
	}

	return c.JSON(inquiry)
}

// RespondToInquiry records the admin response and resolves the inquiry.
func RespondToInquiry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	input := struct {
		Response string `json:"response"`
	}{}
	if err := c.BodyParser(&input); err != nil || input.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Response text is required",
		})
	}

	db := database.GetDB()

	var inquiry model.Inquiry
	if err := db.First(&inquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}

	now := time.Now()
	err = db.Model(&inquiry).Updates(map[string]interface{}{
		"admin_response": input.Response,
		"response_date":  now,
		"is_resolved":    true,
		"is_read":        true,
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save response",
		})
	}

	log.Printf("Admin responded to inquiry ID: %d", id)

	return c.JSON(fiber.Map{
		"message": "Response submitted successfully",
		"inquiry": inquiry,
	})
}

func MarkInquiryAsRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	db := database.GetDB()

	var inquiry model.Inquiry
	if err := db.First(&inquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}

	if err := db.Model(&inquiry).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not mark inquiry as read",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func ToggleInquiryResolved(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	db := database.GetDB()

	var inquiry model.Inquiry
	if err := db.First(&inquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}

	if err := db.Model(&inquiry).Update("is_resolved", !inquiry.IsResolved).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update inquiry",
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Inquiry updated",
		"is_resolved": inquiry.IsResolved,
	})
}

func DeleteInquiry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	db := database.GetDB()

	var inquiry model.Inquiry
	if err := db.First(&inquiry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}

	if err := db.Delete(&inquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete inquiry",
		})
	}

	log.Printf("Inquiry deleted: ID %d", id)

	return c.SendStatus(fiber.StatusNoContent)
}
