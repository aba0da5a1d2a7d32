package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrRateNotFound    = errors.New("hourly rate not found")
	ErrClientNotFound  = errors.New("client not found")

	// ErrInvalidProvince indicates a province code outside the thirteen
	// Canadian provinces and territories.
	ErrInvalidProvince = errors.New("invalid province code")

	// ErrInvalidEntry covers blank names and negative prices or rates.
	ErrInvalidEntry = errors.New("invalid catalogue entry")
)
