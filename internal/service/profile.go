package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
)

// ProfilePatch is the staged profile edit stored on the user row until
// an admin approves or rejects it. Every field is optional; a nil
// pointer means the key was absent and must not be applied.
type ProfilePatch struct {
	FirstName     *string   `json:"first_name,omitempty"`
	LastName      *string   `json:"last_name,omitempty"`
	PhoneNumber   *string   `json:"phone_number,omitempty"`
	Address       *string   `json:"address,omitempty"`
	City          *string   `json:"city,omitempty"`
	State         *string   `json:"state,omitempty"`
	ZipCode       *string   `json:"zip_code,omitempty"`
	RequestedDate time.Time `json:"requested_date"`
}

// ProfileUpdateInput is the user's self-service edit submission.
type ProfileUpdateInput struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zip_code" validate:"omitempty,max=20"`
}

// SubmitProfileUpdate stages a user's profile edit for admin review.
// The live profile fields stay untouched until approval. A second
// submission overwrites the previous pending patch; last one wins.
func SubmitProfileUpdate(db *gorm.DB, actorID, targetID uint, input ProfileUpdateInput) error {
	if actorID != targetID {
		return ErrNotOwner
	}

	var user model.User
	if err := db.First(&user, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	patch := ProfilePatch{
		FirstName:     &input.FirstName,
		LastName:      &input.LastName,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		RequestedDate: time.Now(),
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	return db.Model(&user).Updates(map[string]interface{}{
		"has_pending_updates": true,
		"pending_updates":     datatypes.JSON(raw),
	}).Error
}

// ApprovePendingUpdate applies the staged patch onto the live record
// and clears both staging fields in one transaction. Only keys present
// in the patch are applied; name fields additionally keep their current
// value when the patch carries an empty string.
func ApprovePendingUpdate(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !user.HasPendingUpdates || user.PendingUpdates == nil {
			return ErrNoPendingUpdate
		}

		var patch ProfilePatch
		if err := json.Unmarshal(user.PendingUpdates, &patch); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"has_pending_updates": false,
			"pending_updates":     nil,
		}

		if patch.FirstName != nil && *patch.FirstName != "" {
			updates["first_name"] = *patch.FirstName
		}
		if patch.LastName != nil && *patch.LastName != "" {
			updates["last_name"] = *patch.LastName
		}
		if patch.PhoneNumber != nil {
			updates["phone_number"] = patch.PhoneNumber
		}
		if patch.Address != nil {
			updates["address"] = patch.Address
		}
		if patch.City != nil {
			updates["city"] = patch.City
		}
		if patch.State != nil {
			updates["state"] = patch.State
		}
		if patch.ZipCode != nil {
			updates["zip_code"] = patch.ZipCode
		}

		return tx.Model(&user).Updates(updates).Error
	})
}

// RejectPendingUpdate discards the staged patch. Live fields are never
// touched.
func RejectPendingUpdate(db *gorm.DB, userID uint) error {
	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !user.HasPendingUpdates {
		return ErrNoPendingUpdate
	}

	return db.Model(&user).Updates(map[string]interface{}{
		"has_pending_updates": false,
		"pending_updates":     nil,
	}).Error
}

// PendingPatch decodes a user's staged edit for admin display.
func PendingPatch(user *model.User) (*ProfilePatch, error) {
	if !user.HasPendingUpdates || user.PendingUpdates == nil {
		return nil, ErrNoPendingUpdate
	}

	var patch ProfilePatch
	if err := json.Unmarshal(user.PendingUpdates, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}
