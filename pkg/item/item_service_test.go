package item

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/group"
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeS3 struct {
	mu      sync.Mutex
	deletes []string
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://fake-bucket/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://fake-bucket/")
}

type itemTestEnv struct {
	db        *gorm.DB
	itemSvc   ItemService
	groupRepo group.GroupRepository
	s3        *fakeS3
}

func setupItemTest(t *testing.T) *itemTestEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Group{},
		&entities.GroupMember{},
		&entities.GroupInvite{},
		&entities.Item{},
	))

	groupRepo := group.NewGroupRepository(db)
	s3 := &fakeS3{}
	itemSvc := NewItemService(NewItemRepository(db), groupRepo, s3)

	return &itemTestEnv{
		db:        db,
		itemSvc:   itemSvc,
		groupRepo: groupRepo,
		s3:        s3,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := &entities.User{Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func seedGroup(t *testing.T, db *gorm.DB, ownerID uint, name string) uint {
	t.Helper()
	g := &entities.Group{OwnerUserID: ownerID, Name: name}
	require.NoError(t, db.Create(g).Error)
	return g.ID
}

func uintPtr(v uint) *uint { return &v }

func TestAddItemInvalidExpiry(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")

	_, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:       "Milk",
		ExpiryDate: "01-01-2025",
	}, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddItemUnknownSharingGroup(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")

	_, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:          "Milk",
		ExpiryDate:    "2025-01-01",
		IsShareable:   true,
		SharedGroupID: uintPtr(999),
	}, owner)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestAddItemForeignSharingGroup(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")
	other := seedUser(t, env.db, "b@x.com")
	groupID := seedGroup(t, env.db, other, "Not Yours")

	_, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:          "Milk",
		ExpiryDate:    "2025-01-01",
		IsShareable:   true,
		SharedGroupID: uintPtr(groupID),
	}, owner)
	assert.ErrorIs(t, err, domain.ErrNotGroupOwner)
}

func TestGetItemsOrderedByExpiry(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")

	for _, item := range []struct {
		name   string
		expiry string
	}{
		{"Cheese", "2025-06-01"},
		{"Milk", "2025-01-01"},
		{"Bread", "2025-03-01"},
	} {
		_, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
			Name:       item.name,
			ExpiryDate: item.expiry,
		}, owner)
		require.NoError(t, err)
	}

	items, err := env.itemSvc.GetItems(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Bread", items[1].Name)
	assert.Equal(t, "Cheese", items[2].Name)
}

func TestUpdateItemNotOwned(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")
	other := seedUser(t, env.db, "b@x.com")

	res, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:       "Milk",
		ExpiryDate: "2025-01-01",
	}, owner)
	require.NoError(t, err)

	// someone else's item and a missing item must be indistinguishable
	err = env.itemSvc.UpdateItem(context.Background(), res.ItemID, domain.CreateItemRequest{
		Name:       "Stolen Milk",
		ExpiryDate: "2025-01-01",
	}, other)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	err = env.itemSvc.UpdateItem(context.Background(), 999, domain.CreateItemRequest{
		Name:       "Ghost",
		ExpiryDate: "2025-01-01",
	}, other)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItemNotOwned(t *testing.T) {
	env := setupItemTest(t)
	owner := seedUser(t, env.db, "a@x.com")
	other := seedUser(t, env.db, "b@x.com")

	res, err := env.itemSvc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:       "Milk",
		ExpiryDate: "2025-01-01",
	}, owner)
	require.NoError(t, err)

	err = env.itemSvc.DeleteItem(context.Background(), res.ItemID, other)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, env.itemSvc.DeleteItem(context.Background(), res.ItemID, owner))

	items, err := env.itemSvc.GetItems(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShareableVisibility(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "owner@x.com")
	member := seedUser(t, env.db, "member@x.com")
	stranger := seedUser(t, env.db, "stranger@x.com")

	groupID := seedGroup(t, env.db, owner, "Family")
	require.NoError(t, env.groupRepo.CreateMember(ctx, &entities.GroupMember{
		GroupID: groupID,
		UserID:  member,
	}))

	_, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:        "Public Bread",
		ExpiryDate:  "2025-01-01",
		IsShareable: true,
	}, owner)
	require.NoError(t, err)

	_, err = env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:          "Family Milk",
		ExpiryDate:    "2025-02-01",
		IsShareable:   true,
		SharedGroupID: uintPtr(groupID),
	}, owner)
	require.NoError(t, err)

	_, err = env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:       "Private Cheese",
		ExpiryDate: "2025-03-01",
	}, owner)
	require.NoError(t, err)

	// the owner never sees their own items in the shareable feed
	visible, err := env.itemSvc.GetShareableItems(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, visible)

	// a group member sees both public and group-scoped items, expiry ascending
	visible, err = env.itemSvc.GetShareableItems(ctx, member)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "Public Bread", visible[0].Name)
	assert.Equal(t, "Family Milk", visible[1].Name)

	// a stranger only sees the public item
	visible, err = env.itemSvc.GetShareableItems(ctx, stranger)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public Bread", visible[0].Name)

	// revoking membership removes group-scoped visibility on the next call
	require.NoError(t, env.db.
		Where("group_id = ? AND user_id = ?", groupID, member).
		Delete(&entities.GroupMember{}).Error)

	visible, err = env.itemSvc.GetShareableItems(ctx, member)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public Bread", visible[0].Name)
}

func TestClaimTransfersOwnership(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "a@x.com")
	claimant := seedUser(t, env.db, "b@x.com")

	res, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:        "Milk",
		ExpiryDate:  "2025-01-01",
		IsShareable: true,
	}, owner)
	require.NoError(t, err)

	require.NoError(t, env.itemSvc.ClaimItem(ctx, res.ItemID, claimant))

	var claimed entities.Item
	require.NoError(t, env.db.First(&claimed, res.ItemID).Error)
	assert.Equal(t, claimant, claimed.UserID)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, claimant, *claimed.ClaimedBy)
	assert.NotNil(t, claimed.ClaimedAt)
	assert.False(t, claimed.IsShareable)
	assert.Nil(t, claimed.SharedGroupID)

	// the item now lives in the claimant's inventory
	items, err := env.itemSvc.GetItems(ctx, claimant)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)

	// it is gone from every shareable feed
	visible, err := env.itemSvc.GetShareableItems(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, visible)

	// the previous owner cannot edit or delete it anymore
	err = env.itemSvc.UpdateItem(ctx, res.ItemID, domain.CreateItemRequest{
		Name:       "Milk",
		ExpiryDate: "2025-01-01",
	}, owner)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.ErrorIs(t, env.itemSvc.DeleteItem(ctx, res.ItemID, owner), domain.ErrItemNotFound)
}

func TestClaimRejections(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "a@x.com")
	claimant := seedUser(t, env.db, "b@x.com")
	third := seedUser(t, env.db, "c@x.com")

	assert.ErrorIs(t, env.itemSvc.ClaimItem(ctx, 999, claimant), domain.ErrItemNotFound)

	private, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:       "Private Cheese",
		ExpiryDate: "2025-01-01",
	}, owner)
	require.NoError(t, err)
	assert.ErrorIs(t, env.itemSvc.ClaimItem(ctx, private.ItemID, claimant), domain.ErrItemNotShareable)

	shared, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:        "Milk",
		ExpiryDate:  "2025-01-01",
		IsShareable: true,
	}, owner)
	require.NoError(t, err)

	// self-claim is always rejected
	assert.ErrorIs(t, env.itemSvc.ClaimItem(ctx, shared.ItemID, owner), domain.ErrClaimOwnItem)

	require.NoError(t, env.itemSvc.ClaimItem(ctx, shared.ItemID, claimant))
	assert.ErrorIs(t, env.itemSvc.ClaimItem(ctx, shared.ItemID, third), domain.ErrItemAlreadyClaimed)
}

func TestClaimGroupRestricted(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "a@x.com")
	member := seedUser(t, env.db, "b@x.com")
	stranger := seedUser(t, env.db, "c@x.com")

	groupID := seedGroup(t, env.db, owner, "Family")
	require.NoError(t, env.groupRepo.CreateMember(ctx, &entities.GroupMember{
		GroupID: groupID,
		UserID:  member,
	}))

	res, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:          "Family Milk",
		ExpiryDate:    "2025-01-01",
		IsShareable:   true,
		SharedGroupID: uintPtr(groupID),
	}, owner)
	require.NoError(t, err)

	assert.ErrorIs(t, env.itemSvc.ClaimItem(ctx, res.ItemID, stranger), domain.ErrNotGroupMember)
	require.NoError(t, env.itemSvc.ClaimItem(ctx, res.ItemID, member))
}

func TestConcurrentClaimSingleWinner(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "a@x.com")
	first := seedUser(t, env.db, "b@x.com")
	second := seedUser(t, env.db, "c@x.com")

	res, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:        "Milk",
		ExpiryDate:  "2025-01-01",
		IsShareable: true,
	}, owner)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, claimant := range []uint{first, second} {
		wg.Add(1)
		go func(i int, claimant uint) {
			defer wg.Done()
			errs[i] = env.itemSvc.ClaimItem(ctx, res.ItemID, claimant)
		}(i, claimant)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, domain.ErrItemAlreadyClaimed)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
}

func makeImageFile(t *testing.T) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestUploadItemImageAndDelete(t *testing.T) {
	env := setupItemTest(t)
	ctx := context.Background()
	owner := seedUser(t, env.db, "a@x.com")
	other := seedUser(t, env.db, "b@x.com")

	res, err := env.itemSvc.AddItem(ctx, domain.CreateItemRequest{
		Name:       "Milk",
		ExpiryDate: "2025-01-01",
	}, owner)
	require.NoError(t, err)

	file := makeImageFile(t)

	err = env.itemSvc.UploadItemImage(ctx, res.ItemID, file, other)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, env.itemSvc.UploadItemImage(ctx, res.ItemID, file, owner))

	var stored entities.Item
	require.NoError(t, env.db.First(&stored, res.ItemID).Error)
	assert.NotEmpty(t, stored.ImageURL)

	// deleting the item also drops the stored object
	require.NoError(t, env.itemSvc.DeleteItem(ctx, res.ItemID, owner))
	require.Len(t, env.s3.deletes, 1)
}
