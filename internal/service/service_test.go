package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"estatedesk_backend/internal/model"
)

// newTestDB opens a private in-memory database and migrates the full
// schema. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Inquiry{},
	))

	return db
}

func createProperty(t *testing.T, db *gorm.DB, p model.Property) model.Property {
	t.Helper()

	if p.Title == "" {
		p.Title = "Listing " + uuid.NewString()
	}
	if p.Description == "" {
		p.Description = "A property"
	}
	if p.PropertyType == "" {
		p.PropertyType = "House"
	}
	if p.Address == "" {
		p.Address = "1 Test St"
	}
	if p.City == "" {
		p.City = "Springfield"
	}
	if p.State == "" {
		p.State = "IL"
	}
	if p.ZipCode == "" {
		p.ZipCode = "62701"
	}
	if p.Status == "" {
		p.Status = model.PropertyStatusAvailable
	}

	require.NoError(t, db.Create(&p).Error)
	return p
}

func createUser(t *testing.T, db *gorm.DB, email, password string, active bool) model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hashed),
		IsActive:  active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createAdmin(t *testing.T, db *gorm.DB, email, password string, active bool) model.Admin {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := model.Admin{
		Name:     "Test Admin",
		Email:    email,
		Password: string(hashed),
		IsActive: active,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
