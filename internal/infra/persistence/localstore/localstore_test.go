package localstore

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return NewWithBucket(bucket, slog.Default())
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Priya",
		Email:        "priya@example.com",
		Provider:     entity.ProviderEmail,
		PasswordHash: "$2a$10$fakehash",
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	found, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	// The entity hides the hash from API JSON; the store must keep it anyway.
	assert.Equal(t, user.PasswordHash, found.PasswordHash)

	byEmail, err := repo.FindUserByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.UpdateUser(ctx, &entity.User{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Provider: entity.ProviderEmail}
	require.NoError(t, repo.CreateUser(ctx, user))

	user.RegisterDeviceToken("fcm-token-1")
	require.NoError(t, repo.UpdateUser(ctx, user))

	found, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"fcm-token-1"}, found.DeviceTokens)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))
	_, err = repo.FindUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// Deleting again is not an error.
	require.NoError(t, repo.DeleteUser(ctx, user.ID))
}

func TestCartRepository_SaveLoadClear(t *testing.T) {
	store := newTestStore(t)
	repo := NewCartRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	// Missing cart loads empty.
	cart, err := repo.LoadCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart.Add("almonds-500g", 2)
	require.NoError(t, repo.SaveCart(ctx, userID, cart))

	loaded, err := repo.LoadCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Quantity("almonds-500g"))

	require.NoError(t, repo.ClearCart(ctx, userID))
	loaded, err = repo.LoadCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartRepository_CorruptDocumentLoadsEmpty(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	store := NewWithBucket(bucket, slog.Default())
	repo := NewCartRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, bucket.WriteAll(ctx, cartKey(userID), []byte("{not json"), nil))

	cart, err := repo.LoadCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestLocationRepository_SaveLoadClear(t *testing.T) {
	store := newTestStore(t)
	repo := NewLocationRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	selection, err := repo.LoadSelection(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, selection.SelectedAddress)

	selection = &entity.LocationSelection{
		SelectedAddress:   "14B Marol, Andheri East",
		TerraceAccessible: true,
		SelectedSpot:      &entity.DeliverySpot{ID: "spot_1", Name: "Andheri Metro Station", Available: true},
	}
	require.NoError(t, repo.SaveSelection(ctx, userID, selection))

	loaded, err := repo.LoadSelection(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "14B Marol, Andheri East", loaded.SelectedAddress)
	require.NotNil(t, loaded.SelectedSpot)
	assert.Equal(t, "spot_1", loaded.SelectedSpot.ID)

	require.NoError(t, repo.ClearSelection(ctx, userID))
	loaded, err = repo.LoadSelection(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, loaded.SelectedSpot)
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	store := newTestStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	first := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.StatusConfirmed,
		TotalAmount: 962,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	second := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.StatusDelivered,
		TotalAmount: 128,
		CreatedAt:   time.Now(),
	}
	other := &entity.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    entity.StatusConfirmed,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.CreateOrder(ctx, first))
	require.NoError(t, repo.CreateOrder(ctx, second))
	require.NoError(t, repo.CreateOrder(ctx, other))

	found, err := repo.FindOrderByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 962, found.TotalAmount)

	// Newest first, scoped to the user.
	orders, err := repo.FindOrdersByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	all, err := repo.FindAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	store := newTestStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    entity.StatusConfirmed,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateOrder(ctx, order))

	updatedAt := time.Now().Add(5 * time.Second)
	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, entity.StatusPreparing, updatedAt))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, found.Status)
	assert.WithinDuration(t, updatedAt, found.UpdatedAt, time.Second)

	err = repo.UpdateOrderStatus(ctx, uuid.New(), entity.StatusPreparing, updatedAt)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateStatus_RejectsStaleWrite(t *testing.T) {
	store := newTestStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    entity.StatusConfirmed,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, entity.StatusCancelled, time.Now()))

	// A writer that validated against the pre-cancellation state must not
	// be able to move a terminal order.
	err := repo.UpdateOrderStatus(ctx, order.ID, entity.StatusDelivered, time.Now())
	assert.ErrorIs(t, err, repository.ErrInvalidStatusTransition)

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, found.Status)
}

func TestTransactionManager_Execute(t *testing.T) {
	store := newTestStore(t)
	txManager := NewTransactionManager(store)
	cartRepo := NewCartRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	cart := entity.NewCart()
	cart.Add("masala-chips", 1)
	require.NoError(t, cartRepo.SaveCart(ctx, userID, cart))

	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    entity.StatusConfirmed,
		CreatedAt: time.Now(),
	}

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}

		return factory.NewCartRepository().ClearCart(ctx, userID)
	})
	require.NoError(t, err)

	orderRepo := NewOrderRepository(store)
	found, err := orderRepo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, found.Status)

	loaded, err := cartRepo.LoadCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestWaitlistRepository_CreateAndList(t *testing.T) {
	store := newTestStore(t)
	repo := NewWaitlistRepository(store)
	ctx := context.Background()

	older := &entity.WaitlistEntry{
		ID:        uuid.New(),
		Name:      "Arjun",
		Email:     "arjun@example.com",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &entity.WaitlistEntry{
		ID:        uuid.New(),
		Name:      "Meera",
		Email:     "meera@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateEntry(ctx, older))
	require.NoError(t, repo.CreateEntry(ctx, newer))

	entries, err := repo.FindAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Meera", entries[0].Name)
	assert.Equal(t, "Arjun", entries[1].Name)
}
