package model

import "time"

// Inquiry is a contact message from a visitor. Both references are
// nullable: general inquiries carry neither, and deleting the linked
// user or property nullifies the reference instead of dropping the row.
type Inquiry struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	UserID     *uint `json:"user_id" gorm:"index"`
	PropertyID *uint `json:"property_id" gorm:"index"`

	Name    string  `json:"name" gorm:"size:100;not null"`
	Email   string  `json:"email" gorm:"size:100;not null"`
	Phone   *string `json:"phone" gorm:"size:20"`
	Subject string  `json:"subject" gorm:"size:200;not null"`
	Message string  `json:"message" gorm:"type:text;not null"`

	IsRead        bool       `json:"is_read" gorm:"default:false"`
	IsResolved    bool       `json:"is_resolved" gorm:"default:false"`
	AdminResponse *string    `json:"admin_response" gorm:"size:1000"`
	ResponseDate  *time.Time `json:"response_date"`

	CreatedAt time.Time `json:"inquiry_date" gorm:"autoCreateTime"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
