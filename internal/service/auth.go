package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/pkg/utils/jwt"
)

// Principal is the authenticated identity resolved at login. Role is
// jwt.RoleUser or jwt.RoleAdmin depending on which table matched.
type Principal struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type RegisterInput struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	Password    string  `json:"password" validate:"required,min=6,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zip_code" validate:"omitempty,max=20"`
}

// Authenticate probes the users table first, then admins. An inactive
// account or a wrong password fails exactly like an unknown email so
// the login form cannot be used to enumerate accounts.
func Authenticate(db *gorm.DB, email, password string) (*Principal, error) {
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		if user.IsActive && passwordMatches(user.Password, password) {
			now := time.Now()
			db.Model(&user).Update("last_login", now)

			return &Principal{
				ID:          user.ID,
				Email:       user.Email,
				DisplayName: user.FullName(),
				Role:        jwt.RoleUser,
			}, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var admin model.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err == nil {
		if admin.IsActive && passwordMatches(admin.Password, password) {
			now := time.Now()
			db.Model(&admin).Update("last_login", now)

			return &Principal{
				ID:          admin.ID,
				Email:       admin.Email,
				DisplayName: admin.Name,
				Role:        jwt.RoleAdmin,
			}, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}

// RegisterUser creates a user account. The duplicate check spans both
// identity tables since login treats them as one email space.
func RegisterUser(db *gorm.DB, input RegisterInput) (*model.User, error) {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := db.Model(&model.Admin{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return nil, err
		}
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    string(hashed),
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		IsActive:    true,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
