package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rpggio/farmrec/internal/collection"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/rpggio/farmrec/internal/filestore"
	"github.com/rpggio/farmrec/internal/repository"
	"github.com/rpggio/farmrec/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(store repository.DocumentStore, historyLog user.HistoryLogger) *user.Service {
	repo := collection.New(store, repository.DocumentUsers, user.Key)
	return user.NewService(repo, historyLog, user.Options{BcryptCost: bcrypt.MinCost}, nil)
}

func loadedService(t *testing.T) (*user.Service, *filestore.Store) {
	t.Helper()
	store := filestore.New(t.TempDir())
	svc := newService(store, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc, store
}

func readUsers(t *testing.T, store *filestore.Store) []user.User {
	t.Helper()
	data, err := store.ReadDocument(context.Background(), repository.DocumentUsers)
	require.NoError(t, err)
	var users []user.User
	require.NoError(t, json.Unmarshal(data, &users))
	return users
}

func TestUserService_BootstrapsDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	svc, store := loadedService(t)

	u, err := svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, user.TypeAdmin, u.Type)
	require.True(t, user.CanExport(*u))

	persisted := readUsers(t, store)
	require.Len(t, persisted, 1)
	require.Equal(t, "admin", persisted[0].Username)
	require.NotEqual(t, "admin123", persisted[0].Password)
}

func TestUserService_NoBootstrapWhenDocumentExists(t *testing.T) {
	ctx := context.Background()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.WriteDocument(ctx, repository.DocumentUsers, []byte(`[]`)))

	svc := newService(store, nil)
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 0, svc.Count())

	_, err := svc.Authenticate(ctx, "admin", "admin123")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
}

func TestUserService_MalformedDocumentDegrades(t *testing.T) {
	ctx := context.Background()
	store := &mocks.DocumentStore{}
	store.On("ReadDocument", ctx, repository.DocumentUsers).Return([]byte(`{broken`), nil)

	svc := newService(store, nil)
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 0, svc.Count())
	store.AssertNotCalled(t, "WriteDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_CustomDefaultAdminPassword(t *testing.T) {
	ctx := context.Background()
	repo := collection.New(filestore.New(t.TempDir()), repository.DocumentUsers, user.Key)
	svc := user.NewService(repo, nil, user.Options{DefaultAdminPassword: "s3cret", BcryptCost: bcrypt.MinCost}, nil)
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Authenticate(ctx, "admin", "admin123")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
	_, err = svc.Authenticate(ctx, "admin", "s3cret")
	require.NoError(t, err)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := loadedService(t)

	u, err := svc.Register(ctx, "farmer", "pw1", "")
	require.NoError(t, err)
	require.Equal(t, user.TypeUser, u.Type)
	require.False(t, user.CanExport(*u))
	require.Equal(t, 2, svc.Count())

	_, err = svc.Register(ctx, "farmer", "pw2", user.TypeAdmin)
	require.ErrorIs(t, err, user.ErrDuplicateUsername)
	require.Equal(t, "Tên đăng nhập đã tồn tại", user.Message(err))
	require.Equal(t, 2, svc.Count())

	_, err = svc.Authenticate(ctx, "farmer", "pw2")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
}

func TestUserService_FailedRegisterCanBeRetried(t *testing.T) {
	ctx := context.Background()
	store := &mocks.DocumentStore{}
	store.On("ReadDocument", ctx, repository.DocumentUsers).Return([]byte(`[]`), nil)
	store.On("WriteDocument", ctx, repository.DocumentUsers, mock.Anything).Return(errors.New("disk full")).Once()
	store.On("WriteDocument", ctx, repository.DocumentUsers, mock.Anything).Return(nil)

	svc := newService(store, nil)
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Register(ctx, "farmer", "pw", "")
	require.ErrorContains(t, err, "saving users")
	require.Equal(t, 0, svc.Count())

	_, err = svc.Register(ctx, "farmer", "pw", "")
	require.NoError(t, err)
	require.Equal(t, 1, svc.Count())
}

func TestUserService_FailedChangePasswordKeepsOldPassword(t *testing.T) {
	ctx := context.Background()
	store := &mocks.DocumentStore{}
	store.On("ReadDocument", ctx, repository.DocumentUsers).Return(nil, repository.ErrNotFound)
	store.On("WriteDocument", ctx, repository.DocumentUsers, mock.Anything).Return(nil).Once()
	store.On("WriteDocument", ctx, repository.DocumentUsers, mock.Anything).Return(errors.New("read-only"))

	svc := newService(store, nil)
	require.NoError(t, svc.Load(ctx))

	err := svc.ChangePassword(ctx, "admin", "admin123", "new-pass")
	require.ErrorContains(t, err, "saving users")

	_, err = svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "admin", "new-pass")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
}

func TestUserService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := loadedService(t)

	_, err := svc.Register(ctx, "  ", "pw", "")
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Register(ctx, "farmer", "", "")
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Register(ctx, "farmer", "pw", "owner")
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Register(ctx, "farmer", strings.Repeat("x", 73), "")
	require.ErrorIs(t, err, user.ErrInvalidInput)

	require.Equal(t, 1, svc.Count())
}

func TestUserService_RegisterRecordsHistory(t *testing.T) {
	ctx := context.Background()
	historyLog := &mocks.HistoryLogger{}
	historyLog.On("Log", ctx, mock.MatchedBy(func(e *history.Entry) bool {
		return e.Action == history.ActionRegistered && e.Actor == "farmer"
	})).Return(nil)

	svc := newService(filestore.New(t.TempDir()), historyLog)
	require.NoError(t, svc.Load(ctx))
	_, err := svc.Register(ctx, "farmer", "pw", "")
	require.NoError(t, err)
	historyLog.AssertExpectations(t)
}

func TestUserService_AuthenticateGenericFailure(t *testing.T) {
	ctx := context.Background()
	svc, _ := loadedService(t)

	_, unknown := svc.Authenticate(ctx, "nobody", "admin123")
	_, wrong := svc.Authenticate(ctx, "admin", "nope")
	_, empty := svc.Authenticate(ctx, "admin", "")
	require.ErrorIs(t, unknown, user.ErrAuthenticationFailed)
	require.Equal(t, unknown, wrong)
	require.Equal(t, unknown, empty)
	require.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng", user.Message(unknown))

	// repeated unknown lookups keep failing the same way once the dummy hash exists
	_, again := svc.Authenticate(ctx, "ghost", "x")
	require.Equal(t, unknown, again)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := loadedService(t)

	err := svc.ChangePassword(ctx, "admin", "wrong", "new-pass")
	require.ErrorIs(t, err, user.ErrCurrentPasswordMismatch)
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
	require.Equal(t, "Mật khẩu hiện tại không đúng", user.Message(err))

	require.ErrorIs(t, svc.ChangePassword(ctx, "admin", "admin123", ""), user.ErrInvalidInput)

	require.NoError(t, svc.ChangePassword(ctx, "admin", "admin123", "new-pass"))
	_, err = svc.Authenticate(ctx, "admin", "admin123")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
	_, err = svc.Authenticate(ctx, "admin", "new-pass")
	require.NoError(t, err)
}

func TestUserService_LegacyPlaintextUpgraded(t *testing.T) {
	ctx := context.Background()
	store := filestore.New(t.TempDir())
	legacy := `[{"username": "admin", "password": "admin123", "type": "admin"}]`
	require.NoError(t, store.WriteDocument(ctx, repository.DocumentUsers, []byte(legacy)))

	svc := newService(store, nil)
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Authenticate(ctx, "admin", "wrong")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)

	u, err := svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.True(t, u.IsAdmin())

	persisted := readUsers(t, store)
	require.Len(t, persisted, 1)
	require.NotEqual(t, "admin123", persisted[0].Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted[0].Password), []byte("admin123")))

	// a fresh gate still accepts the password against the upgraded hash
	fresh := newService(store, nil)
	require.NoError(t, fresh.Load(ctx))
	_, err = fresh.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
}

func TestParseType(t *testing.T) {
	got, err := user.ParseType(" Admin ")
	require.NoError(t, err)
	require.Equal(t, user.TypeAdmin, got)

	got, err = user.ParseType("")
	require.NoError(t, err)
	require.Equal(t, user.TypeUser, got)

	_, err = user.ParseType("root")
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestMessage(t *testing.T) {
	require.Empty(t, user.Message(nil))
	require.Equal(t, "Tên đăng nhập và mật khẩu không được để trống", user.Message(user.ErrInvalidInput))
}
