package onboarding

import "errors"

// Validation errors for the sign-up form.
var (
	errNameRequired   = errors.New("full name is required")
	errNameTooLong    = errors.New("full name must be at most 64 characters")
	errPhoneRequired  = errors.New("phone number is required")
	errPhoneInvalid   = errors.New("phone number must contain 10 digits")
	errEmailRequired  = errors.New("email is required")
	errEmailInvalid   = errors.New("please enter a valid email")
	errSportsRequired = errors.New("please select at least one sport")
	errTermsRequired  = errors.New("please accept the terms and conditions")
)
