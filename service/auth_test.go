package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-Horse-battery-9"

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("New user is saved", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("ByUsername", ctx, "walker").Return(nil, dmn.ErrUserNotFound)
		users.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		auth, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)

		user, err := auth.Register(ctx, "walker", strongPassword)
		require.NoError(t, err)
		assert.Equal(t, "walker", user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.True(t, user.VerifyPassword(strongPassword))
		users.AssertExpectations(t)
	})

	t.Run("Taken username", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("ByUsername", ctx, "walker").Return(&dmn.User{Username: "walker"}, nil)

		auth, _ := NewAuthService(users, &mockTokenizer{})
		_, err := auth.Register(ctx, "walker", strongPassword)
		assert.ErrorIs(t, err, dmn.ErrUsernameConflict)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Weak password never reaches the repo", func(t *testing.T) {
		users := &mockUserRepo{}
		auth, _ := NewAuthService(users, &mockTokenizer{})

		_, err := auth.Register(ctx, "walker", "password")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
		users.AssertNotCalled(t, "ByUsername", mock.Anything, mock.Anything)
	})

	t.Run("Repo failure", func(t *testing.T) {
		users := &mockUserRepo{}
		boom := errors.New("connection reset")
		users.On("ByUsername", ctx, "walker").Return(nil, boom)

		auth, _ := NewAuthService(users, &mockTokenizer{})
		_, err := auth.Register(ctx, "walker", strongPassword)
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuth_SignIn(t *testing.T) {
	ctx := context.Background()
	user, err := dmn.NewUser(dmn.UserConfig{ID: uuid.New(), Username: "walker", PlainPassword: strongPassword})
	require.NoError(t, err)

	t.Run("Valid credentials", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("ByUsername", ctx, "walker").Return(user, nil)
		tokens := &mockTokenizer{}
		tokens.On("Generate", map[string]interface{}{
			ClaimUserID:   user.ID.String(),
			ClaimUsername: "walker",
		}, tokenLifetime).Return("signed", nil)

		auth, _ := NewAuthService(users, tokens)
		got, token, err := auth.SignIn(ctx, "walker", strongPassword)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "signed", token)
		tokens.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("ByUsername", ctx, "walker").Return(user, nil)

		auth, _ := NewAuthService(users, &mockTokenizer{})
		_, _, err := auth.SignIn(ctx, "walker", "nope")
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("ByUsername", ctx, "ghost").Return(nil, dmn.ErrUserNotFound)

		auth, _ := NewAuthService(users, &mockTokenizer{})
		_, _, err := auth.SignIn(ctx, "ghost", strongPassword)
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})
}

func TestNewAuthService_RequiresDeps(t *testing.T) {
	_, err := NewAuthService(nil, &mockTokenizer{})
	assert.Error(t, err)
}
