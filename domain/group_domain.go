package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateGroup   = "group created successfully"
	MessageSuccessGetGroups     = "groups retrieved successfully"
	MessageSuccessInvite        = "invite sent"
	MessageSuccessGetInvites    = "invites retrieved successfully"
	MessageSuccessAcceptInvite  = "invite accepted"
	MessageSuccessDeclineInvite = "invite declined"
	MessageSuccessGetMembers    = "group members retrieved successfully"

	MessageFailedCreateGroup   = "failed to create group"
	MessageFailedGetGroups     = "failed to retrieve groups"
	MessageFailedInvite        = "failed to send invite"
	MessageFailedGetInvites    = "failed to retrieve invites"
	MessageFailedAcceptInvite  = "failed to accept invite"
	MessageFailedDeclineInvite = "failed to decline invite"
	MessageFailedGetMembers    = "failed to retrieve group members"

	ErrGroupNotFound        = errors.New("group not found")
	ErrNotGroupOwner        = errors.New("group is not owned by you")
	ErrInvitedUserNotFound  = errors.New("user with that email does not exist")
	ErrAlreadyMember        = errors.New("user is already a member")
	ErrInviteAlreadyPending = errors.New("invite already pending")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteAlreadyHandled = errors.New("invite already handled")
)

type (
	CreateGroupRequest struct {
		Name string `json:"name" validate:"required"`
	}

	GroupResponse struct {
		ID          uint      `json:"id"`
		OwnerUserID uint      `json:"owner_user_id"`
		Name        string    `json:"name"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ListGroupsResponse struct {
		Owned    []GroupResponse `json:"owned"`
		MemberOf []GroupResponse `json:"memberOf"`
	}

	InviteRequest struct {
		Email           string  `json:"email" validate:"required,email"`
		PreferenceLabel *string `json:"preference_label" validate:"omitempty"`
	}

	InviteResponse struct {
		Message  string `json:"message"`
		InviteID uint   `json:"inviteId"`
	}

	PendingInviteResponse struct {
		ID              uint      `json:"id"`
		GroupID         uint      `json:"group_id"`
		GroupName       string    `json:"group_name"`
		InviterUserID   uint      `json:"inviter_user_id"`
		PreferenceLabel *string   `json:"preference_label"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
	}

	GroupMemberResponse struct {
		UserID          uint    `json:"user_id"`
		Email           string  `json:"email"`
		PreferenceLabel *string `json:"preference_label"`
	}
)
