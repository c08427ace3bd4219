package model

import "time"

// Admin lives in its own table, disjoint from User. Login probes both
// tables by email and the matching table decides the session role.
type Admin struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Password     string     `json:"-" gorm:"not null"`
	PhoneNumber  *string    `json:"phone_number" gorm:"size:20"`
	IsSuperAdmin bool       `json:"is_super_admin" gorm:"default:false"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
