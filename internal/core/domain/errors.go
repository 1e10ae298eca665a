package domain

import "errors"

var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrSnapshotMissing      = errors.New("snapshot not found")
	ErrDirectoryUnavailable = errors.New("remote directory unavailable")
	ErrNoSession            = errors.New("no active session")
)
