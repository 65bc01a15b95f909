package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/notification/domain/entity"
)

type mockNotificationRepository struct {
	CreateFunc      func(ctx context.Context, n *entity.Notification) error
	ListByUserFunc  func(ctx context.Context, userID uint) ([]entity.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID uint) (int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return m.CreateFunc(ctx, n)
}
func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Notification, error) {
	return m.ListByUserFunc(ctx, userID)
}
func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return m.MarkAllReadFunc(ctx, userID)
}
func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return m.CountUnreadFunc(ctx, userID)
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, n entity.Notification) error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, n entity.Notification) error {
	return m.DispatchFunc(ctx, n)
}

func TestNotificationUsecase_Send(t *testing.T) {
	t.Parallel()

	t.Run("persists then dispatches", func(t *testing.T) {
		t.Parallel()
		var dispatched entity.Notification
		repo := &mockNotificationRepository{CreateFunc: func(_ context.Context, n *entity.Notification) error {
			n.ID = 11
			return nil
		}}
		d := &mockDispatcher{DispatchFunc: func(_ context.Context, n entity.Notification) error {
			dispatched = n
			return nil
		}}
		uc := NewNotificationUsecase(repo, d)

		n, err := uc.Send(context.Background(), 3, "  Hello ", "World")
		require.NoError(t, err)
		assert.Equal(t, uint(11), n.ID)
		assert.Equal(t, "Hello", n.Title)
		assert.Equal(t, uint(11), dispatched.ID)
		assert.Equal(t, uint(3), dispatched.UserID)
	})

	t.Run("dispatch failure does not fail send", func(t *testing.T) {
		t.Parallel()
		repo := &mockNotificationRepository{CreateFunc: func(context.Context, *entity.Notification) error { return nil }}
		d := &mockDispatcher{DispatchFunc: func(context.Context, entity.Notification) error { return errors.New("webhook 502") }}
		_, err := NewNotificationUsecase(repo, d).Send(context.Background(), 3, "t", "c")
		assert.NoError(t, err)
	})

	t.Run("nil dispatcher", func(t *testing.T) {
		t.Parallel()
		repo := &mockNotificationRepository{CreateFunc: func(context.Context, *entity.Notification) error { return nil }}
		_, err := NewNotificationUsecase(repo, nil).Send(context.Background(), 3, "t", "c")
		assert.NoError(t, err)
	})

	invalid := []struct {
		name           string
		userID         uint
		title, content string
	}{
		{"zero user", 0, "t", "c"},
		{"blank title", 1, "  ", "c"},
		{"blank content", 1, "t", ""},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &mockNotificationRepository{CreateFunc: func(context.Context, *entity.Notification) error {
				t.Fatal("Create must not be called")
				return nil
			}}
			_, err := NewNotificationUsecase(repo, nil).Send(context.Background(), tt.userID, tt.title, tt.content)
			assert.ErrorIs(t, err, ErrInvalidNotification)
		})
	}

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		dbErr := errors.New("db down")
		repo := &mockNotificationRepository{CreateFunc: func(context.Context, *entity.Notification) error { return dbErr }}
		_, err := NewNotificationUsecase(repo, nil).Send(context.Background(), 1, "t", "c")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestNotificationUsecase_OrderPlaced(t *testing.T) {
	t.Parallel()

	var got *entity.Notification
	repo := &mockNotificationRepository{CreateFunc: func(_ context.Context, n *entity.Notification) error {
		got = n
		return nil
	}}
	err := NewNotificationUsecase(repo, nil).OrderPlaced(context.Background(), 7, 42, decimal.NewFromInt(150000))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "Order placed", got.Title)
	assert.Contains(t, got.Content, "#42")
	assert.Contains(t, got.Content, "150000.00")
}

func TestNotificationUsecase_Inbox(t *testing.T) {
	t.Parallel()

	repo := &mockNotificationRepository{
		ListByUserFunc: func(_ context.Context, userID uint) ([]entity.Notification, error) {
			return []entity.Notification{{ID: 2, UserID: userID}, {ID: 1, UserID: userID}}, nil
		},
		MarkAllReadFunc: func(context.Context, uint) (int64, error) { return 2, nil },
		CountUnreadFunc: func(context.Context, uint) (int64, error) { return 4, nil },
	}
	uc := NewNotificationUsecase(repo, nil)
	ctx := context.Background()

	list, err := uc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := uc.MarkAllRead(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = uc.UnreadCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = uc.List(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidNotification)
	_, err = uc.MarkAllRead(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidNotification)
	_, err = uc.UnreadCount(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidNotification)
}
