package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/group"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		CreateGroup(c *fiber.Ctx) error
		GetGroups(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
		InviteMember(c *fiber.Ctx) error
		GetInvites(c *fiber.Ctx) error
		AcceptInvite(c *fiber.Ctx) error
		DeclineInvite(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
		validator    *validator.Validate
	}
)

func NewGroupHandler(groupService group.GroupService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func groupID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, domain.ErrGroupNotFound
	}
	return uint(id), nil
}

func inviteID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, domain.ErrInviteNotFound
	}
	return uint(id), nil
}

func (h *groupHandler) CreateGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.CreateGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroup, err)
	}

	res, err := h.groupService.CreateGroup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedCreateGroup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *groupHandler) GetGroups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	res, err := h.groupService.GetGroups(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetGroups, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *groupHandler) GetMembers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := groupID(c)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetMembers, err)
	}

	members, err := h.groupService.GetMembers(c.Context(), id, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, members, fiber.StatusOK)
}

func (h *groupHandler) InviteMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := groupID(c)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedInvite, err)
	}

	req := new(domain.InviteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvite, err)
	}

	res, err := h.groupService.InviteMember(c.Context(), id, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedInvite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *groupHandler) GetInvites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	invites, err := h.groupService.GetPendingInvites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetInvites, err)
	}

	return presenters.SuccessResponse(c, invites, fiber.StatusOK)
}

func (h *groupHandler) AcceptInvite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := inviteID(c)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedAcceptInvite, err)
	}

	if err := h.groupService.AcceptInvite(c.Context(), id, userID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedAcceptInvite, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessAcceptInvite)
}

func (h *groupHandler) DeclineInvite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := inviteID(c)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedDeclineInvite, err)
	}

	if err := h.groupService.DeclineInvite(c.Context(), id, userID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedDeclineInvite, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeclineInvite)
}
