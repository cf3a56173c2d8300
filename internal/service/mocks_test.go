package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"KisiKart/internal/model"
	"KisiKart/internal/repo"
)

// моки для repo.CardRepository / repo.AdminRepository

type mockCardRepo struct{ mock.Mock }

func (m *mockCardRepo) Create(ctx context.Context, card *model.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *mockCardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) GetByPhone(ctx context.Context, phone string) (*model.Card, error) {
	args := m.Called(ctx, phone)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) ListAll(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Card); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockCardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CardRepository = (*mockCardRepo)(nil)

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AdminRepository = (*mockAdminRepo)(nil)
