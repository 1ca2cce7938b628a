package group

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/pkg/user"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type groupTestEnv struct {
	db       *gorm.DB
	groupSvc GroupService
}

func setupGroupTest(t *testing.T) *groupTestEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Group{},
		&entities.GroupMember{},
		&entities.GroupInvite{},
	))

	groupSvc := NewGroupService(
		NewGroupRepository(db),
		user.NewUserRepository(db),
		mailing.NewMailer(mailing.MailConfig{}),
	)

	return &groupTestEnv{db: db, groupSvc: groupSvc}
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	u := &entities.User{Email: email, Password: "hash"}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func strPtr(s string) *string { return &s }

func TestCreateAndListGroups(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	member := seedUser(t, env.db, "member@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, owner, created.OwnerUserID)
	assert.Equal(t, "Family", created.Name)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "member@x.com"}, owner)
	require.NoError(t, err)
	require.NoError(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, member))

	ownerView, err := env.groupSvc.GetGroups(ctx, owner)
	require.NoError(t, err)
	require.Len(t, ownerView.Owned, 1)
	assert.Empty(t, ownerView.MemberOf)

	memberView, err := env.groupSvc.GetGroups(ctx, member)
	require.NoError(t, err)
	assert.Empty(t, memberView.Owned)
	require.Len(t, memberView.MemberOf, 1)
	assert.Equal(t, "Family", memberView.MemberOf[0].Name)
}

func TestInviteRejections(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")
	outsider := seedUser(t, env.db, "outsider@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	// only the owner may invite; a foreign group looks missing
	_, err = env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, outsider)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	_, err = env.groupSvc.InviteMember(ctx, 999, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	_, err = env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "nobody@x.com"}, owner)
	assert.ErrorIs(t, err, domain.ErrInvitedUserNotFound)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)

	// a second invite while one is still pending is a conflict
	_, err = env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	assert.ErrorIs(t, err, domain.ErrInviteAlreadyPending)

	require.NoError(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, invitee))

	// and once accepted, the invitee is already a member
	_, err = env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestPendingInvitesNewestFirst(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")

	first, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)
	second, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Neighbours"}, owner)
	require.NoError(t, err)

	_, err = env.groupSvc.InviteMember(ctx, first.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)
	_, err = env.groupSvc.InviteMember(ctx, second.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)

	pending, err := env.groupSvc.GetPendingInvites(ctx, invitee)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Neighbours", pending[0].GroupName)
	assert.Equal(t, "Family", pending[1].GroupName)
	assert.Equal(t, entities.InviteStatusPending, pending[0].Status)

	// the owner has no pending invites of their own
	pending, err = env.groupSvc.GetPendingInvites(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAcceptInviteCarriesPreference(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{
		Email:           "invitee@x.com",
		PreferenceLabel: strPtr("vegan"),
	}, owner)
	require.NoError(t, err)

	require.NoError(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, invitee))

	members, err := env.groupSvc.GetMembers(ctx, created.ID, owner)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, invitee, members[0].UserID)
	assert.Equal(t, "invitee@x.com", members[0].Email)
	require.NotNil(t, members[0].PreferenceLabel)
	assert.Equal(t, "vegan", *members[0].PreferenceLabel)

	// pending list is empty once the invite is handled
	pending, err := env.groupSvc.GetPendingInvites(ctx, invitee)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestInviteStateIsTerminal(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)

	require.NoError(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, invitee))
	assert.ErrorIs(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, invitee), domain.ErrInviteAlreadyHandled)
	assert.ErrorIs(t, env.groupSvc.DeclineInvite(ctx, invite.InviteID, invitee), domain.ErrInviteAlreadyHandled)
}

func TestDeclineInvite(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)

	require.NoError(t, env.groupSvc.DeclineInvite(ctx, invite.InviteID, invitee))

	members, err := env.groupSvc.GetMembers(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.ErrorIs(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, invitee), domain.ErrInviteAlreadyHandled)
}

func TestAcceptInviteDualKey(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	invitee := seedUser(t, env.db, "invitee@x.com")
	other := seedUser(t, env.db, "other@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	invite, err := env.groupSvc.InviteMember(ctx, created.ID, domain.InviteRequest{Email: "invitee@x.com"}, owner)
	require.NoError(t, err)

	// someone else's invite and a missing invite must be indistinguishable
	assert.ErrorIs(t, env.groupSvc.AcceptInvite(ctx, invite.InviteID, other), domain.ErrInviteNotFound)
	assert.ErrorIs(t, env.groupSvc.DeclineInvite(ctx, 999, invitee), domain.ErrInviteNotFound)
}

func TestGetMembersOwnerOnly(t *testing.T) {
	env := setupGroupTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	other := seedUser(t, env.db, "other@x.com")

	created, err := env.groupSvc.CreateGroup(ctx, domain.CreateGroupRequest{Name: "Family"}, owner)
	require.NoError(t, err)

	_, err = env.groupSvc.GetMembers(ctx, created.ID, other)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}
