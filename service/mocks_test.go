package service

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Save(ctx context.Context, user *dmn.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dmn.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) ByUsername(ctx context.Context, username string) (*dmn.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*dmn.User)
	return u, args.Error(1)
}

type mockRunRepo struct{ mock.Mock }

func (m *mockRunRepo) Save(ctx context.Context, run *dmn.Run) error {
	return m.Called(ctx, run).Error(0)
}

func (m *mockRunRepo) ByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*dmn.Run, error) {
	args := m.Called(ctx, owner, limit)
	runs, _ := args.Get(0).([]*dmn.Run)
	return runs, args.Error(1)
}

type mockTokenizer struct{ mock.Mock }

func (m *mockTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	args := m.Called(claims, expTime)
	return args.String(0), args.Error(1)
}

func (m *mockTokenizer) Decode(token string) (map[string]interface{}, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(map[string]interface{})
	return claims, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
