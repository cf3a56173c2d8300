package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"KisiKart/internal/config"
	"KisiKart/internal/handlers"
	"KisiKart/internal/model"
	"KisiKart/internal/repo"
	"KisiKart/internal/service"
	"KisiKart/internal/session"
)

// Local light mocks
type hMockCardRepo struct{ mock.Mock }

func (m *hMockCardRepo) Create(ctx context.Context, card *model.Card) error {
	return m.Called(ctx, card).Error(0)
}
func (m *hMockCardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockCardRepo) GetByPhone(ctx context.Context, phone string) (*model.Card, error) {
	args := m.Called(ctx, phone)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockCardRepo) ListAll(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Card); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockCardRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *hMockCardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CardRepository = (*hMockCardRepo)(nil)

type hMockAdminRepo struct{ mock.Mock }

func (m *hMockAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AdminRepository = (*hMockAdminRepo)(nil)

// --- Helpers ---

func newTestRouter(t *testing.T, cards repo.CardRepository, admins repo.AdminRepository) (http.Handler, *session.Authority) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	authority := session.NewAuthority(cfg.AuthSecret, time.Hour, time.Hour)

	cardSvc := service.NewCardService(cards, logger)
	authSvc := service.NewAuthService(admins, cards, service.PlainVerifier{})

	h := handlers.NewHandler(cardSvc, authSvc, authority, logger, cfg)
	return h.Router, authority
}

func addAdminCookie(t *testing.T, req *http.Request, authority *session.Authority) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = authority.IssueAdmin(rr)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func addOwnerCookie(t *testing.T, req *http.Request, authority *session.Authority, cardID string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = authority.IssueOwner(rr, cardID)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
