package group

import (
	"FoodShare-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	GroupRepository interface {
		CreateGroup(ctx context.Context, group *entities.Group) error
		GetGroupByID(ctx context.Context, id uint) (*entities.Group, error)
		GetGroupByIDAndOwner(ctx context.Context, id, ownerID uint) (*entities.Group, error)
		GetGroupsByOwner(ctx context.Context, ownerID uint) ([]*entities.Group, error)
		GetGroupsByMember(ctx context.Context, userID uint) ([]*entities.Group, error)

		IsMember(ctx context.Context, groupID, userID uint) (bool, error)
		CreateMember(ctx context.Context, member *entities.GroupMember) error
		GetMembers(ctx context.Context, groupID uint) ([]*entities.GroupMember, error)

		CreateInvite(ctx context.Context, invite *entities.GroupInvite) error
		GetInviteByIDAndInvitee(ctx context.Context, id, invitedUserID uint) (*entities.GroupInvite, error)
		HasPendingInvite(ctx context.Context, groupID, invitedUserID uint) (bool, error)
		GetPendingInvitesByInvitee(ctx context.Context, invitedUserID uint) ([]*entities.GroupInvite, error)
		UpdateInvite(ctx context.Context, invite *entities.GroupInvite) error
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) CreateGroup(ctx context.Context, group *entities.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id uint) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroupByIDAndOwner(ctx context.Context, id, ownerID uint) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_user_id = ?", id, ownerID).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroupsByOwner(ctx context.Context, ownerID uint) ([]*entities.Group, error) {
	var groups []*entities.Group
	if err := r.db.WithContext(ctx).Where("owner_user_id = ?", ownerID).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) GetGroupsByMember(ctx context.Context, userID uint) ([]*entities.Group, error) {
	var groups []*entities.Group
	if err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	var member entities.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *groupRepository) CreateMember(ctx context.Context, member *entities.GroupMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *groupRepository) GetMembers(ctx context.Context, groupID uint) ([]*entities.GroupMember, error) {
	var members []*entities.GroupMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *groupRepository) CreateInvite(ctx context.Context, invite *entities.GroupInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *groupRepository) GetInviteByIDAndInvitee(ctx context.Context, id, invitedUserID uint) (*entities.GroupInvite, error) {
	var invite entities.GroupInvite
	if err := r.db.WithContext(ctx).
		Where("id = ? AND invited_user_id = ?", id, invitedUserID).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *groupRepository) HasPendingInvite(ctx context.Context, groupID, invitedUserID uint) (bool, error) {
	var invite entities.GroupInvite
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND invited_user_id = ? AND status = ?", groupID, invitedUserID, entities.InviteStatusPending).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *groupRepository) GetPendingInvitesByInvitee(ctx context.Context, invitedUserID uint) ([]*entities.GroupInvite, error) {
	var invites []*entities.GroupInvite
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("invited_user_id = ? AND status = ?", invitedUserID, entities.InviteStatusPending).
		Order("id desc").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *groupRepository) UpdateInvite(ctx context.Context, invite *entities.GroupInvite) error {
	return r.db.WithContext(ctx).Save(invite).Error
}
