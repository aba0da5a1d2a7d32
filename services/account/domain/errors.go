package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrEmailTaken indicates a registration with an email already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden indicates the authenticated user lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound indicates the session refers to a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrWeakPassword indicates a registration password below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrBusinessNotFound indicates the owner never saved a business profile.
	ErrBusinessNotFound = errors.New("business profile not found")
	// ErrInvalidProfile indicates a business profile with a blank name or an
	// unknown province.
	ErrInvalidProfile = errors.New("invalid business profile")
)
