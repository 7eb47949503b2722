package booking

import "errors"

var (
	ErrSessionNotFound      = errors.New("booking session not found or expired")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrInvalidStep          = errors.New("operation not allowed at current booking step")
	ErrInvalidHours         = errors.New("hours must be at least 1")
	ErrInvalidMethod        = errors.New("unsupported payment method")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrReviewRequired       = errors.New("a review comment is required to release payment")
)
