package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/pkg/database"
)

type DashboardStats struct {
	TotalProperties     int64 `json:"total_properties"`
	AvailableProperties int64 `json:"available_properties"`
	SoldProperties      int64 `json:"sold_properties"`
	FeaturedProperties  int64 `json:"featured_properties"`
	TotalUsers          int64 `json:"total_users"`
	TotalInquiries      int64 `json:"total_inquiries"`
	UnreadInquiries     int64 `json:"unread_inquiries"`
	RecentInquiries     int64 `json:"recent_inquiries"`
	PendingUpdates      int64 `json:"pending_updates"`

	RecentProperties []model.Property `json:"recent_properties"`
	LatestInquiries  []model.Inquiry  `json:"latest_inquiries"`
}

// GetDashboardStats aggregates the counters for the admin landing page.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats DashboardStats

	db.Model(&model.Property{}).Count(&stats.TotalProperties)
	db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusAvailable).
		Count(&stats.AvailableProperties)
	db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusSold).
		Count(&stats.SoldProperties)
	db.Model(&model.Property{}).Where("is_featured = ?", true).
		Count(&stats.FeaturedProperties)

	db.Model(&model.User{}).Where("is_active = ?", true).Count(&stats.TotalUsers)
	db.Model(&model.User{}).Where("has_pending_updates = ?", true).
		Count(&stats.PendingUpdates)

	db.Model(&model.Inquiry{}).Count(&stats.TotalInquiries)
	db.Model(&model.Inquiry{}).Where("is_read = ?", false).Count(&stats.UnreadInquiries)
	db.Model(&model.Inquiry{}).Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&stats.RecentInquiries)

	stats.RecentProperties = []model.Property{}
	db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("property_images.display_order ASC")
	}).Order("created_at desc").Limit(5).Find(&stats.RecentProperties)

	stats.LatestInquiries = []model.Inquiry{}
	db.Preload("User").Preload("Property").
		Order("created_at desc").Limit(5).Find(&stats.LatestInquiries)

	return c.JSON(stats)
}
