package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-builder/internal/config"
	"github.com/resumehub/resume-builder/internal/db"
	"github.com/resumehub/resume-builder/internal/types"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	f.users[id] = &db.User{ID: id, Name: name, Email: email}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.users[userID].PasswordHash = passwordHash
	return nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestRegister(t *testing.T) {
	svc, store := testUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Jordan Lee",
		Email:    "jordan@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", user.Name)
	assert.Equal(t, "jordan@example.com", user.Email)

	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()

	req := &types.CreateUserRequest{Name: "A", Email: "dup@example.com", Password: "password-one"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestLogin(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jordan", Email: "jordan@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "jordan@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", user.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jordan", Email: "jordan@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "jordan@example.com", Password: "wrong",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.Error(t, err)
	// Same error as a wrong password, so login does not leak which emails exist
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := testUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jordan", Email: "jordan@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(context.Background(), user.ID, "old-password", "new-password"))

	_, err = svc.Login(context.Background(), &types.LoginRequest{Email: "jordan@example.com", Password: "old-password"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{Email: "jordan@example.com", Password: "new-password"})
	assert.NoError(t, err)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	svc, _ := testUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jordan", Email: "jordan@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(context.Background(), user.ID, "not-the-password", "new-password")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
