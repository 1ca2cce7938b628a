package item

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/group"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.CreateItemRequest, userID uint) (domain.CreateItemResponse, error)
		UpdateItem(ctx context.Context, id uint, req domain.CreateItemRequest, userID uint) error
		DeleteItem(ctx context.Context, id uint, userID uint) error
		GetItems(ctx context.Context, userID uint) ([]domain.ItemResponse, error)
		GetShareableItems(ctx context.Context, viewerID uint) ([]domain.ItemResponse, error)
		ClaimItem(ctx context.Context, id uint, claimantID uint) error
		UploadItemImage(ctx context.Context, id uint, image *multipart.FileHeader, userID uint) error
	}

	itemService struct {
		itemRepository  ItemRepository
		groupRepository group.GroupRepository
		s3              storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, groupRepository group.GroupRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository:  itemRepository,
		groupRepository: groupRepository,
		s3:              s3,
	}
}

// checkSharingTarget validates a group-scoped sharing request: the group must
// exist and only its owner may designate it as a sharing target.
func (s *itemService) checkSharingTarget(ctx context.Context, groupID uint, userID uint) error {
	g, err := s.groupRepository.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}
	if g.OwnerUserID != userID {
		return domain.ErrNotGroupOwner
	}
	return nil
}

func (s *itemService) AddItem(ctx context.Context, req domain.CreateItemRequest, userID uint) (domain.CreateItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.CreateItemResponse{}, domain.ErrInvalidExpiryDate
	}

	var sharedGroupID *uint
	if req.IsShareable && req.SharedGroupID != nil {
		if err := s.checkSharingTarget(ctx, *req.SharedGroupID, userID); err != nil {
			return domain.CreateItemResponse{}, err
		}
		sharedGroupID = req.SharedGroupID
	}

	item := &entities.Item{
		UserID:        userID,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		ExpiryDate:    expiryDate,
		IsShareable:   req.IsShareable,
		SharedGroupID: sharedGroupID,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.CreateItemResponse{}, err
	}

	return domain.CreateItemResponse{
		Message: domain.MessageSuccessAddItem,
		ItemID:  item.ID,
	}, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id uint, req domain.CreateItemRequest, userID uint) error {
	item, err := s.itemRepository.GetItemByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ErrInvalidExpiryDate
	}

	var sharedGroupID *uint
	if req.IsShareable && req.SharedGroupID != nil {
		if err := s.checkSharingTarget(ctx, *req.SharedGroupID, userID); err != nil {
			return err
		}
		sharedGroupID = req.SharedGroupID
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Quantity = req.Quantity
	item.ExpiryDate = expiryDate
	item.IsShareable = req.IsShareable
	item.SharedGroupID = sharedGroupID

	return s.itemRepository.UpdateItem(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, id uint, userID uint) error {
	item, err := s.itemRepository.GetItemByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.itemRepository.DeleteItem(ctx, item.ID)
}

func (s *itemService) GetItems(ctx context.Context, userID uint) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) GetShareableItems(ctx context.Context, viewerID uint) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetShareableItems(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) ClaimItem(ctx context.Context, id uint, claimantID uint) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if !item.IsShareable {
		return domain.ErrItemNotShareable
	}
	if item.ClaimedBy != nil {
		return domain.ErrItemAlreadyClaimed
	}
	if item.UserID == claimantID {
		return domain.ErrClaimOwnItem
	}
	if item.SharedGroupID != nil {
		isMember, err := s.groupRepository.IsMember(ctx, *item.SharedGroupID, claimantID)
		if err != nil {
			return err
		}
		if !isMember {
			return domain.ErrNotGroupMember
		}
	}

	rows, err := s.itemRepository.ClaimItem(ctx, id, claimantID, time.Now())
	if err != nil {
		return err
	}
	if rows == 0 {
		// lost the race to another claimant
		return domain.ErrItemAlreadyClaimed
	}
	return nil
}

func (s *itemService) UploadItemImage(ctx context.Context, id uint, image *multipart.FileHeader, userID uint) error {
	item, err := s.itemRepository.GetItemByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("item-%d", item.ID)
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.itemRepository.UpdateItem(ctx, item)
}

func toItemResponses(items []*entities.Item) []domain.ItemResponse {
	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.ItemResponse{
			ID:            item.ID,
			UserID:        item.UserID,
			Name:          item.Name,
			Category:      item.Category,
			Quantity:      item.Quantity,
			ExpiryDate:    item.ExpiryDate,
			IsShareable:   item.IsShareable,
			SharedGroupID: item.SharedGroupID,
			ClaimedBy:     item.ClaimedBy,
			ClaimedAt:     item.ClaimedAt,
			ImageURL:      item.ImageURL,
			CreatedAt:     item.CreatedAt,
		})
	}
	return response
}
