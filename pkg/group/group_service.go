package group

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type (
	GroupService interface {
		CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID uint) (domain.GroupResponse, error)
		GetGroups(ctx context.Context, userID uint) (domain.ListGroupsResponse, error)
		GetMembers(ctx context.Context, groupID uint, ownerID uint) ([]domain.GroupMemberResponse, error)
		InviteMember(ctx context.Context, groupID uint, req domain.InviteRequest, ownerID uint) (domain.InviteResponse, error)
		GetPendingInvites(ctx context.Context, userID uint) ([]domain.PendingInviteResponse, error)
		AcceptInvite(ctx context.Context, inviteID uint, userID uint) error
		DeclineInvite(ctx context.Context, inviteID uint, userID uint) error
	}

	groupService struct {
		groupRepository GroupRepository
		userRepository  user.UserRepository
		mailer          mailing.Mailer
	}
)

func NewGroupService(groupRepository GroupRepository, userRepository user.UserRepository, mailer mailing.Mailer) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		userRepository:  userRepository,
		mailer:          mailer,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID uint) (domain.GroupResponse, error) {
	group := &entities.Group{
		OwnerUserID: userID,
		Name:        req.Name,
	}

	if err := s.groupRepository.CreateGroup(ctx, group); err != nil {
		return domain.GroupResponse{}, err
	}

	return toGroupResponse(group), nil
}

func (s *groupService) GetGroups(ctx context.Context, userID uint) (domain.ListGroupsResponse, error) {
	owned, err := s.groupRepository.GetGroupsByOwner(ctx, userID)
	if err != nil {
		return domain.ListGroupsResponse{}, err
	}

	memberOf, err := s.groupRepository.GetGroupsByMember(ctx, userID)
	if err != nil {
		return domain.ListGroupsResponse{}, err
	}

	response := domain.ListGroupsResponse{
		Owned:    make([]domain.GroupResponse, 0, len(owned)),
		MemberOf: make([]domain.GroupResponse, 0, len(memberOf)),
	}
	for _, g := range owned {
		response.Owned = append(response.Owned, toGroupResponse(g))
	}
	for _, g := range memberOf {
		response.MemberOf = append(response.MemberOf, toGroupResponse(g))
	}
	return response, nil
}

func (s *groupService) GetMembers(ctx context.Context, groupID uint, ownerID uint) ([]domain.GroupMemberResponse, error) {
	if _, err := s.groupRepository.GetGroupByIDAndOwner(ctx, groupID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	members, err := s.groupRepository.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroupMemberResponse, 0, len(members))
	for _, m := range members {
		member := domain.GroupMemberResponse{
			UserID:          m.UserID,
			PreferenceLabel: m.PreferenceLabel,
		}
		if m.User != nil {
			member.Email = m.User.Email
		}
		response = append(response, member)
	}
	return response, nil
}

func (s *groupService) InviteMember(ctx context.Context, groupID uint, req domain.InviteRequest, ownerID uint) (domain.InviteResponse, error) {
	group, err := s.groupRepository.GetGroupByIDAndOwner(ctx, groupID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InviteResponse{}, domain.ErrGroupNotFound
		}
		return domain.InviteResponse{}, err
	}

	// the invitee must already have an account
	invitedUser, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InviteResponse{}, domain.ErrInvitedUserNotFound
		}
		return domain.InviteResponse{}, err
	}

	isMember, err := s.groupRepository.IsMember(ctx, groupID, invitedUser.ID)
	if err != nil {
		return domain.InviteResponse{}, err
	}
	if isMember {
		return domain.InviteResponse{}, domain.ErrAlreadyMember
	}

	hasPending, err := s.groupRepository.HasPendingInvite(ctx, groupID, invitedUser.ID)
	if err != nil {
		return domain.InviteResponse{}, err
	}
	if hasPending {
		return domain.InviteResponse{}, domain.ErrInviteAlreadyPending
	}

	invite := &entities.GroupInvite{
		GroupID:         groupID,
		InviterUserID:   ownerID,
		InvitedUserID:   invitedUser.ID,
		PreferenceLabel: req.PreferenceLabel,
		Status:          entities.InviteStatusPending,
	}

	if err := s.groupRepository.CreateInvite(ctx, invite); err != nil {
		return domain.InviteResponse{}, err
	}

	if s.mailer.Enabled() {
		go func(toEmail, groupName string) {
			subject := fmt.Sprintf("You have been invited to %s", groupName)
			body := fmt.Sprintf(
				"<p>You have been invited to join the group <b>%s</b>.</p><p>Log in to accept or decline the invite.</p>",
				groupName,
			)
			if err := s.mailer.SendMail(toEmail, subject, body); err != nil {
				log.Printf("error sending invite mail: %v", err)
			}
		}(invitedUser.Email, group.Name)
	}

	return domain.InviteResponse{
		Message:  domain.MessageSuccessInvite,
		InviteID: invite.ID,
	}, nil
}

func (s *groupService) GetPendingInvites(ctx context.Context, userID uint) ([]domain.PendingInviteResponse, error) {
	invites, err := s.groupRepository.GetPendingInvitesByInvitee(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PendingInviteResponse, 0, len(invites))
	for _, invite := range invites {
		pending := domain.PendingInviteResponse{
			ID:              invite.ID,
			GroupID:         invite.GroupID,
			InviterUserID:   invite.InviterUserID,
			PreferenceLabel: invite.PreferenceLabel,
			Status:          invite.Status,
			CreatedAt:       invite.CreatedAt,
		}
		if invite.Group != nil {
			pending.GroupName = invite.Group.Name
		}
		response = append(response, pending)
	}
	return response, nil
}

// getPendingInvite is the shared accept/decline lookup: dual-key by (id,
// invitee) then a terminal-state check.
func (s *groupService) getPendingInvite(ctx context.Context, inviteID uint, userID uint) (*entities.GroupInvite, error) {
	invite, err := s.groupRepository.GetInviteByIDAndInvitee(ctx, inviteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, err
	}
	if invite.Status != entities.InviteStatusPending {
		return nil, domain.ErrInviteAlreadyHandled
	}
	return invite, nil
}

func (s *groupService) AcceptInvite(ctx context.Context, inviteID uint, userID uint) error {
	invite, err := s.getPendingInvite(ctx, inviteID, userID)
	if err != nil {
		return err
	}

	isMember, err := s.groupRepository.IsMember(ctx, invite.GroupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		member := &entities.GroupMember{
			GroupID:         invite.GroupID,
			UserID:          userID,
			PreferenceLabel: invite.PreferenceLabel,
		}
		if err := s.groupRepository.CreateMember(ctx, member); err != nil {
			return err
		}
	}

	invite.Status = entities.InviteStatusAccepted
	return s.groupRepository.UpdateInvite(ctx, invite)
}

func (s *groupService) DeclineInvite(ctx context.Context, inviteID uint, userID uint) error {
	invite, err := s.getPendingInvite(ctx, inviteID, userID)
	if err != nil {
		return err
	}

	invite.Status = entities.InviteStatusDeclined
	return s.groupRepository.UpdateInvite(ctx, invite)
}

func toGroupResponse(group *entities.Group) domain.GroupResponse {
	return domain.GroupResponse{
		ID:          group.ID,
		OwnerUserID: group.OwnerUserID,
		Name:        group.Name,
		CreatedAt:   group.CreatedAt,
	}
}
