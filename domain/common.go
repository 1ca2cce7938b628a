package domain

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"

	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// StatusCode resolves a domain error to its HTTP status. Anything that is not a
// known sentinel is an unexpected failure and surfaces as 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidExpiryDate),
		errors.Is(err, ErrClaimOwnItem),
		errors.Is(err, ErrItemNotShareable),
		errors.Is(err, ErrInviteAlreadyHandled),
		errors.Is(err, ErrMissingQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrNotGroupOwner),
		errors.Is(err, ErrNotGroupMember):
		return fiber.StatusForbidden
	case errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrGroupNotFound),
		errors.Is(err, ErrInviteNotFound),
		errors.Is(err, ErrInvitedUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyRegistered),
		errors.Is(err, ErrItemAlreadyClaimed),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrInviteAlreadyPending):
		return fiber.StatusConflict
	case errors.Is(err, ErrUpstreamFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
