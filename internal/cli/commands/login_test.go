package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"KisiKart/internal/config"
	"KisiKart/internal/session"
)

func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)

	// HTTP сервер имитирует /api/auth/login
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/auth/login") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		// успех: 200 + Set-Cookie
		http.SetCookie(w, &http.Cookie{Name: session.AdminCookieName, Value: "tok-123"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"role":"admin"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"admin", "admin123"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// проверим, что сессия сохранена: %CONFIG%/KisiKart/admin_session
	var sessionPath string
	if p, err := os.UserConfigDir(); err == nil {
		sessionPath = filepath.Join(p, "KisiKart", "admin_session")
	}
	b, err := os.ReadFile(sessionPath)
	if err != nil || string(b) != "tok-123" {
		t.Fatalf("admin session not saved: %v (%q)", err, b)
	}

	// owner-логин: 200, но role=user — kkcli отказывает
	tsOwner := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: session.OwnerCookieName, Value: "tok-owner"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"role":"user","id":"abc"}`))
	}))
	defer tsOwner.Close()
	if err := cmd.Run(context.Background(), &config.Config{ServerURL: tsOwner.URL}, []string{"+90555", "pw"}); err == nil {
		t.Fatalf("expected error for non-admin account")
	}

	// 401 Unauthorized
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts401.Close()
	if err := cmd.Run(context.Background(), &config.Config{ServerURL: ts401.URL}, []string{"admin", "bad"}); err == nil {
		t.Fatalf("expected error for 401")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyUsername"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// server 500 → ошибка
	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	if err := cmd.Run(context.Background(), &config.Config{ServerURL: ts500.URL}, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for 500")
	}
}
