package seed

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
)

// SeedDemoData loads sample accounts, listings and inquiries into an
// empty database. A database with any existing users, admins or
// properties is left alone.
func SeedDemoData(db *gorm.DB) {
	var users, admins, properties int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Admin{}).Count(&admins)
	db.Model(&model.Property{}).Count(&properties)
	if users > 0 || admins > 0 || properties > 0 {
		return
	}

	admin := model.Admin{
		Name:         "Admin",
		Email:        "admin@estatedesk.com",
		Password:     mustHash("Admin@123"),
		PhoneNumber:  ptr("+1-555-0100"),
		IsSuperAdmin: true,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin: %v", err)
		return
	}

	demoUsers := []model.User{
		{
			FirstName: "John", LastName: "Doe",
			Email:       "john.doe@example.com",
			Password:    mustHash("User@123"),
			PhoneNumber: ptr("+1-555-0101"),
			Address:     ptr("123 Main St"), City: ptr("New York"),
			State: ptr("NY"), ZipCode: ptr("10001"),
			IsActive: true,
		},
		{
			FirstName: "Jane", LastName: "Smith",
			Email:       "jane.smith@example.com",
			Password:    mustHash("User@123"),
			PhoneNumber: ptr("+1-555-0102"),
			Address:     ptr("456 Oak Ave"), City: ptr("Los Angeles"),
			State: ptr("CA"), ZipCode: ptr("90001"),
			IsActive: true,
		},
	}
	if err := db.Create(&demoUsers).Error; err != nil {
		log.Printf("Error seeding users: %v", err)
		return
	}

	now := time.Now()
	demoProperties := []model.Property{
		{
			Title:       "Modern Downtown Loft",
			Description: "Open-plan loft with floor to ceiling windows and skyline views.",
			PropertyType: string(model.PropertyTypeApartment), Price: 525000,
			Address: "88 Grand St", City: "New York", State: "NY", ZipCode: "10013",
			Bedrooms: 2, Bathrooms: 2, Area: 1250,
			YearBuilt: ptrInt(2015), GarageSpaces: ptrInt(0),
			Status: model.PropertyStatusAvailable, IsFeatured: true,
			CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			Title:       "Suburban Family House",
			Description: "Four bedroom colonial on a quiet cul-de-sac with a large yard.",
			PropertyType: string(model.PropertyTypeHouse), Price: 689000,
			Address: "14 Birchwood Ln", City: "Stamford", State: "CT", ZipCode: "06901",
			Bedrooms: 4, Bathrooms: 3, Area: 2800,
			YearBuilt: ptrInt(1998), GarageSpaces: ptrInt(2),
			Status: model.PropertyStatusAvailable, IsFeatured: true,
			CreatedAt: now.AddDate(0, 0, -10),
		},
		{
			Title:       "Beachside Condo",
			Description: "Two bedroom condo steps from the sand, fully renovated kitchen.",
			PropertyType: string(model.PropertyTypeCondo), Price: 430000,
			Address: "501 Ocean Dr", City: "Santa Monica", State: "CA", ZipCode: "90401",
			Bedrooms: 2, Bathrooms: 1, Area: 980,
			YearBuilt: ptrInt(2005),
			Status:    model.PropertyStatusAvailable,
			CreatedAt: now.AddDate(0, 0, -6),
		},
		{
			Title:       "Commercial Storefront",
			Description: "Street-level retail space with high foot traffic.",
			PropertyType: string(model.PropertyTypeCommercial), Price: 1200000,
			Address: "220 5th Ave", City: "New York", State: "NY", ZipCode: "10001",
			Bedrooms: 0, Bathrooms: 1, Area: 3200,
			Status:    model.PropertyStatusSold,
			CreatedAt: now.AddDate(0, -1, 0),
		},
	}
	if err := db.Create(&demoProperties).Error; err != nil {
		log.Printf("Error seeding properties: %v", err)
		return
	}

	inquiry := model.Inquiry{
		UserID:     &demoUsers[0].ID,
		PropertyID: &demoProperties[0].ID,
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Phone:      ptr("+1-555-0101"),
		Subject:    "Viewing request",
		Message:    "Is the loft available for a viewing this weekend?",
	}
	if err := db.Create(&inquiry).Error; err != nil {
		log.Printf("Error seeding inquiry: %v", err)
		return
	}

	log.Println("Demo data seeded successfully!")
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Could not hash seed password:", err)
	}
	return string(hashed)
}

func ptr(s string) *string { return &s }

func ptrInt(i int) *int { return &i }
