package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidCategory = fmt.Errorf("invalid dataset category")
	ErrInvalidFormat   = fmt.Errorf("invalid output format")
	ErrInvalidMonth    = fmt.Errorf("invalid month")
	ErrInvalidRange    = fmt.Errorf("invalid month range")

	// Download errors
	ErrClientUnavailable = fmt.Errorf("download client unavailable")
	ErrRateLimited       = fmt.Errorf("rate limited by server")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected HTTP status")
	ErrDownloadFailed    = fmt.Errorf("download failed")

	// Conversion errors
	ErrArchiveFormat = fmt.Errorf("unexpected archive contents")
)
