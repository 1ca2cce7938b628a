package domain

import "errors"

var (
	MessageFailedSearchProducts = "failed to search products"

	ErrMissingQuery    = errors.New("query parameter q is required")
	ErrUpstreamFailure = errors.New("external service error")
)

// ProductResponse is the simplified Open Food Facts product the frontend
// consumes. Products without a name are dropped before they get here.
type ProductResponse struct {
	Code       *string `json:"code"`
	Name       string  `json:"name"`
	Brand      *string `json:"brand"`
	Categories string  `json:"categories"`
	Image      *string `json:"image"`
}
