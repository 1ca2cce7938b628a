package item

import (
	"FoodShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id uint) (*entities.Item, error)
		GetItemByIDAndOwner(ctx context.Context, id, ownerID uint) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id uint) error
		GetItemsByOwner(ctx context.Context, ownerID uint) ([]*entities.Item, error)
		GetShareableItems(ctx context.Context, viewerID uint) ([]*entities.Item, error)
		ClaimItem(ctx context.Context, id, claimantID uint, claimedAt time.Time) (int64, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id uint) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemByIDAndOwner is the dual-key lookup: a miss means "absent or not
// yours" and callers must not distinguish the two.
func (r *itemRepository) GetItemByIDAndOwner(ctx context.Context, id, ownerID uint) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

func (r *itemRepository) GetItemsByOwner(ctx context.Context, ownerID uint) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetShareableItems applies the visibility predicate: shareable, unclaimed,
// not the viewer's own, and either public or scoped to a group the viewer is
// currently a member of. Membership is recomputed on every call.
func (r *itemRepository) GetShareableItems(ctx context.Context, viewerID uint) ([]*entities.Item, error) {
	memberGroups := r.db.Model(&entities.GroupMember{}).
		Select("group_id").
		Where("user_id = ?", viewerID)

	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("is_shareable = ? AND claimed_by IS NULL AND user_id <> ?", true, viewerID).
		Where("shared_group_id IS NULL OR shared_group_id IN (?)", memberGroups).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ClaimItem performs the claim transition as a single conditional UPDATE so
// two simultaneous claims on the same item resolve to exactly one winner.
// The loser sees zero affected rows.
func (r *itemRepository) ClaimItem(ctx context.Context, id, claimantID uint, claimedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id = ? AND claimed_by IS NULL", id).
		Updates(map[string]interface{}{
			"user_id":         claimantID,
			"is_shareable":    false,
			"shared_group_id": nil,
			"claimed_by":      claimantID,
			"claimed_at":      claimedAt,
		})
	return res.RowsAffected, res.Error
}
