// internal/config/constants.go
package config

import "time"

// Application information
const (
	AppName    = "DentalClinicAPI"
	AppVersion = "1.0.0"
)

// Default settings
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultAccessTokenTTL  = 1 * time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Code issuance: activation and reset codes share the same 8-character shape
// but deliberately not the same lifetime. Reset codes are short-lived.
const (
	ActivationCodeLength = 8
	ActivationCodeTTL    = 1440 * time.Minute
	ResetCodeLength      = 8
	ResetCodeTTL         = 30 * time.Minute
)
