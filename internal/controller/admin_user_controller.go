package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/service"
	"estatedesk_backend/pkg/database"
)

func ListUsers(c *fiber.Ctx) error {
	users := []model.User{}
	err := database.GetDB().Order("created_at desc").Find(&users).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch users",
		})
	}

	return c.JSON(users)
}

// GetUser returns a user with their inquiries and, when present, the
// decoded pending profile patch for review.
func GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var user model.User
	if err := database.GetDB().Preload("Inquiries").First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	response := fiber.Map{"user": user}
	if patch, err := service.PendingPatch(&user); err == nil {
		response["pending_patch"] = patch
	}

	return c.JSON(response)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	db := database.GetDB()

	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := db.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update user status",
		})
	}

	log.Printf("User %s status changed to active=%t", user.Email, user.IsActive)

	return c.JSON(fiber.Map{
		"message":   "User status updated",
		"is_active": user.IsActive,
	})
}

// ApproveUpdate applies a user's staged profile edit.
func ApproveUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := service.ApprovePendingUpdate(database.GetDB(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrNoPendingUpdate) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No pending update for this user",
			})
		}
		log.Printf("Error approving profile update for user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while approving the update",
		})
	}

	log.Printf("Admin approved profile update for user %d", id)

	return c.JSON(fiber.Map{
		"message": "Profile update approved",
	})
}

// RejectUpdate discards a user's staged profile edit.
func RejectUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := service.RejectPendingUpdate(database.GetDB(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrNoPendingUpdate) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No pending update for this user",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while rejecting the update",
		})
	}

	log.Printf("Admin rejected profile update for user %d", id)

	return c.JSON(fiber.Map{
		"message": "Profile update rejected",
	})
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := service.DeleteUser(database.GetDB(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete user",
		})
	}

	log.Printf("User deleted: ID %d", id)

	return c.SendStatus(fiber.StatusNoContent)
}
