package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/farmrec/internal/collection"
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/repository"
	"github.com/rpggio/farmrec/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*activity.Service, *mocks.DocumentStore, *mocks.HistoryLogger) {
	t.Helper()
	store := &mocks.DocumentStore{}
	historyLog := &mocks.HistoryLogger{}
	repo := collection.New(store, repository.DocumentActivities, activity.Key)
	return activity.NewService(repo, historyLog, nil), store, historyLog
}

func spraying() activity.Input {
	return activity.Input{Name: "Phun thuốc", Type: "Chăm sóc", Date: "2024-05-02", Responsible: "Anh Ba", Status: "Hoàn thành"}
}

func TestActivityService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc, store, historyLog := newService(t)
	store.On("WriteDocument", ctx, repository.DocumentActivities, mock.Anything).Return(nil)
	historyLog.On("Log", ctx, mock.MatchedBy(func(e *history.Entry) bool {
		return e.Collection == activity.CollectionName && e.Actor == "farmer"
	})).Return(nil)

	created, err := svc.Create(ctx, "farmer", spraying())
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)

	in := spraying()
	in.Description = "  sau cuốn lá  "
	updated, err := svc.Update(ctx, "farmer", created.ID, in)
	require.NoError(t, err)
	require.Equal(t, "sau cuốn lá", updated.Description)

	require.NoError(t, svc.Delete(ctx, "farmer", created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, activity.ErrActivityNotFound)

	store.AssertNumberOfCalls(t, "WriteDocument", 3)
	historyLog.AssertNumberOfCalls(t, "Log", 3)
}

func TestActivityService_CreateValidation(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Create(context.Background(), "farmer", activity.Input{Name: "Tưới nước"})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestActivityService_UpdateMissingLeavesCollection(t *testing.T) {
	ctx := context.Background()
	svc, store, historyLog := newService(t)
	store.On("WriteDocument", ctx, repository.DocumentActivities, mock.Anything).Return(nil)
	historyLog.On("Log", ctx, mock.Anything).Return(nil)

	created, err := svc.Create(ctx, "farmer", spraying())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "farmer", created.ID+1, spraying())
	require.ErrorIs(t, err, activity.ErrActivityNotFound)
	require.Equal(t, []activity.Activity{*created}, svc.List(ctx))
}

func TestActivityService_SearchResponsible(t *testing.T) {
	ctx := context.Background()
	svc, store, historyLog := newService(t)
	store.On("WriteDocument", ctx, repository.DocumentActivities, mock.Anything).Return(nil)
	historyLog.On("Log", ctx, mock.Anything).Return(nil)

	_, err := svc.Create(ctx, "farmer", spraying())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "farmer", activity.Input{Name: "Cho ăn", Type: "Chăn nuôi", Responsible: "Chị Tư"})
	require.NoError(t, err)

	require.Len(t, svc.Search(ctx, "chi tu"), 1)
	require.Len(t, svc.Search(ctx, "phun"), 1)
}

func TestActivityService_LoadFailurePropagates(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)
	boom := errors.New("permission denied")
	store.On("ReadDocument", ctx, repository.DocumentActivities).Return(nil, boom)

	require.ErrorIs(t, svc.Load(ctx), boom)
}

func TestActivityService_FailedDeleteKeepsRecord(t *testing.T) {
	ctx := context.Background()
	svc, store, historyLog := newService(t)
	store.On("WriteDocument", ctx, repository.DocumentActivities, mock.Anything).Return(nil).Once()
	store.On("WriteDocument", ctx, repository.DocumentActivities, mock.Anything).Return(errors.New("read-only"))
	historyLog.On("Log", ctx, mock.Anything).Return(nil)

	created, err := svc.Create(ctx, "farmer", spraying())
	require.NoError(t, err)

	require.ErrorContains(t, svc.Delete(ctx, "farmer", created.ID), "saving activities")
	require.Len(t, svc.List(ctx), 1)
	require.Len(t, svc.Search(ctx, "phun"), 1)
}
