package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem           = "item added to fridge"
	MessageSuccessUpdateItem        = "item updated successfully"
	MessageSuccessDeleteItem        = "item deleted successfully"
	MessageSuccessGetItems          = "items retrieved successfully"
	MessageSuccessGetShareableItems = "shareable items retrieved successfully"
	MessageSuccessClaimItem         = "item claimed successfully"
	MessageSuccessUploadItemImage   = "item image uploaded successfully"

	MessageFailedAddItem           = "failed to add item"
	MessageFailedUpdateItem        = "failed to update item"
	MessageFailedDeleteItem        = "failed to delete item"
	MessageFailedGetItems          = "failed to retrieve items"
	MessageFailedGetShareableItems = "failed to retrieve shareable items"
	MessageFailedClaimItem         = "failed to claim item"
	MessageFailedUploadItemImage   = "failed to upload item image"

	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrItemNotShareable   = errors.New("item is not shareable")
	ErrItemAlreadyClaimed = errors.New("item already claimed")
	ErrClaimOwnItem       = errors.New("cannot claim your own item")
	ErrNotGroupMember     = errors.New("not a member of the item's group")
)

type (
	// CreateItemRequest doubles as the update body: PUT /items/:id takes the
	// same shape and the same required fields.
	CreateItemRequest struct {
		Name          string  `json:"name" validate:"required"`
		Category      *string `json:"category" validate:"omitempty"`
		Quantity      *string `json:"quantity" validate:"omitempty"`
		ExpiryDate    string  `json:"expiry_date" validate:"required"`
		IsShareable   bool    `json:"is_shareable"`
		SharedGroupID *uint   `json:"shared_group_id" validate:"omitempty"`
	}

	CreateItemResponse struct {
		Message string `json:"message"`
		ItemID  uint   `json:"itemId"`
	}

	ItemResponse struct {
		ID            uint       `json:"id"`
		UserID        uint       `json:"user_id"`
		Name          string     `json:"name"`
		Category      *string    `json:"category"`
		Quantity      *string    `json:"quantity"`
		ExpiryDate    time.Time  `json:"expiry_date"`
		IsShareable   bool       `json:"is_shareable"`
		SharedGroupID *uint      `json:"shared_group_id"`
		ClaimedBy     *uint      `json:"claimed_by"`
		ClaimedAt     *time.Time `json:"claimed_at"`
		ImageURL      string     `json:"image_url,omitempty"`
		CreatedAt     time.Time  `json:"created_at"`
	}

	UploadItemImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
