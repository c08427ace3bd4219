package service

import "errors"

var (
	// ErrNotFound covers any entity ID that does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is the single login failure: wrong password,
	// unknown email and inactive account all collapse into it so the
	// response never reveals which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken means the email exists in either identity table.
	ErrEmailTaken = errors.New("this email is already registered")

	// ErrNotOwner means the acting identity does not own the target record.
	ErrNotOwner = errors.New("not authorized for this record")

	// ErrNoPendingUpdate means approve/reject hit a user without a
	// staged edit; treated as not-found.
	ErrNoPendingUpdate = errors.New("no pending profile update")
)
