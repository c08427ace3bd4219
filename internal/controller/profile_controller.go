package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/service"
	"estatedesk_backend/pkg/database"
	"estatedesk_backend/pkg/utils/jwt"
	"estatedesk_backend/pkg/utils/validation"
)

func GetProfile(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var user model.User
	if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user)
}

// UpdateProfile stages the edit for admin approval; the live profile is
// not modified here.
func UpdateProfile(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	input := struct {
		service.ProfileUpdateInput
		UserID *uint `json:"user_id"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fields := validation.ValidateStruct(input.ProfileUpdateInput); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	// The edit must target the caller's own record
	targetID := claims.UserID
	if input.UserID != nil {
		targetID = *input.UserID
	}

	err := service.SubmitProfileUpdate(database.GetDB(), claims.UserID, targetID, input.ProfileUpdateInput)
	if err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not authorized to edit this profile",
			})
		}
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not submit profile update",
		})
	}

	log.Printf("User %s submitted profile update request", claims.Email)

	return c.JSON(fiber.Map{
		"message": "Profile update request submitted! Waiting for admin approval.",
	})
}
