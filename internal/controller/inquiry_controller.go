package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/pkg/database"
	"estatedesk_backend/pkg/utils/jwt"
	"estatedesk_backend/pkg/utils/validation"
)

type InquiryInput struct {
	PropertyID *uint   `json:"property_id"`
	Name       string  `json:"name" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Subject    string  `json:"subject" validate:"required,max=200"`
	Message    string  `json:"message" validate:"required,max=2000"`
}

// SubmitInquiry accepts the public contact form. Anonymous and
// authenticated visitors may submit; a valid session links the inquiry
// to the account.
func SubmitInquiry(c *fiber.Ctx) error {
	input := new(InquiryInput)
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

	db := database.GetDB()

	if input.PropertyID != nil {
		var property model.Property
		if err := db.First(&property, *input.PropertyID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
	}

	inquiry := model.Inquiry{
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Subject:    input.Subject,
		Message:    input.Message,
	}

	if claims, ok := c.Locals("user").(*jwt.Claims); ok && claims.Role == jwt.RoleUser {
		inquiry.UserID = &claims.UserID
	}

	if err := db.Create(&inquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not submit inquiry",
		})
	}

	log.Printf("New inquiry submitted by %s for property %v", inquiry.Email, inquiry.PropertyID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your inquiry has been submitted successfully! We will contact you soon.",
		"inquiry": inquiry,
	})
}

// ListMyInquiries returns the authenticated user's own inquiries.
func ListMyInquiries(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	inquiries := []model.Inquiry{}
	err := database.GetDB().Where("user_id = ?", claims.UserID).
		Preload("Property").
		Order("created_at desc").
		Find(&inquiries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch inquiries",
		})
	}

	return c.JSON(inquiries)
}
