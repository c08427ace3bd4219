package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	FirstName string `json:"first_name" gorm:"size:50;not null"`
	LastName  string `json:"last_name" gorm:"size:50;not null"`

	// Optional contact fields, editable only through the approval workflow
	PhoneNumber *string `json:"phone_number" gorm:"size:20"`
	Address     *string `json:"address" gorm:"size:200"`
	City        *string `json:"city" gorm:"size:100"`
	State       *string `json:"state" gorm:"size:100"`
	ZipCode     *string `json:"zip_code" gorm:"size:20"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login"`

	// Staged profile edit awaiting admin disposition.
	// PendingUpdates is non-nil exactly when HasPendingUpdates is true.
	HasPendingUpdates bool           `json:"has_pending_updates" gorm:"default:false"`
	PendingUpdates    datatypes.JSON `json:"pending_updates,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Inquiries []Inquiry `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
