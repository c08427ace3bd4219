package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/service"
	"estatedesk_backend/pkg/database"
	"estatedesk_backend/pkg/utils/jwt"
	"estatedesk_backend/pkg/utils/validation"
)

type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

func Register(c *fiber.Ctx) error {
	input := new(service.RegisterInput)
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

	user, err := service.RegisterUser(database.GetDB(), *input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": fiber.Map{"email": "This email is already registered"},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create user",
		})
	}

	log.Printf("New user registered: %s", user.Email)

	// New registrations get a non-persistent session
	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName(), jwt.RoleUser, false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	principal, err := service.Authenticate(database.GetDB(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not process login",
		})
	}

	token, err := jwt.GenerateToken(principal.ID, principal.Email, principal.DisplayName, principal.Role, input.RememberMe)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	log.Printf("%s %s logged in", principal.Role, principal.Email)

	return c.JSON(fiber.Map{
		"token": token,
		"user":  principal,
	})
}

// ForgotPassword never reveals whether the email exists; the response
// is identical either way.
func ForgotPassword(c *fiber.Ctx) error {
	input := struct {
		Email string `json:"email" validate:"required,email"`
	}{}

	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter your email address",
		})
	}

	log.Printf("Password reset requested for email: %s", input.Email)

	return c.JSON(fiber.Map{
		"message": "If an account exists for this email, reset instructions have been sent.",
	})
}

func GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	if claims.Role == jwt.RoleAdmin {
		var admin model.Admin
		if err := database.GetDB().First(&admin, claims.UserID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Account not found",
			})
		}
		return c.JSON(fiber.Map{"user": admin, "role": jwt.RoleAdmin})
	}

	var user model.User
	if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Account not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch user",
		})
	}

	return c.JSON(fiber.Map{"user": user, "role": jwt.RoleUser})
}
