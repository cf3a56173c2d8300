// Package session — единственный источник session-куков. Две независимые
// сессии сосуществуют в одном браузере: административная и owner-сессия
// владельца конкретной карточки. Серверного списка отзыва нет — время жизни
// определяется самим куком.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AdminCookieName = "admin_session"
	OwnerCookieName = "user_session"
)

const adminRole = "admin"

// adminClaims — утверждение "предъявитель — администратор".
type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ownerClaims — утверждение "предъявитель владеет карточкой Subject".
type ownerClaims struct {
	jwt.RegisteredClaims
}

// Authority выпускает и проверяет оба вида сессий. Состояния не хранит:
// проверка — это только валидация подписи и срока.
type Authority struct {
	secret   []byte
	adminTTL time.Duration
	ownerTTL time.Duration
}

func NewAuthority(secret string, adminTTL, ownerTTL time.Duration) *Authority {
	return &Authority{secret: []byte(secret), adminTTL: adminTTL, ownerTTL: ownerTTL}
}

// IssueAdmin выпускает административную сессию и ставит admin_session cookie.
func (a *Authority) IssueAdmin(w http.ResponseWriter) error {
	claims := adminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.adminTTL)),
		},
	}
	return a.setCookie(w, AdminCookieName, claims, a.adminTTL)
}

// IssueOwner выпускает owner-сессию для карточки cardID и ставит
// user_session cookie. Субъект токена — id карточки.
func (a *Authority) IssueOwner(w http.ResponseWriter, cardID string) error {
	if cardID == "" {
		return errors.New("empty card id for owner session")
	}
	claims := ownerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cardID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ownerTTL)),
		},
	}
	return a.setCookie(w, OwnerCookieName, claims, a.ownerTTL)
}

// Clear гасит оба кука. Отзыв токенов не подразумевается.
func (a *Authority) Clear(w http.ResponseWriter) {
	for _, name := range []string{AdminCookieName, OwnerCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
}

// AdminFromRequest проверяет admin_session. Невалидный или чужой токен —
// просто аноним, не ошибка.
func (a *Authority) AdminFromRequest(r *http.Request) bool {
	c, err := r.Cookie(AdminCookieName)
	if err != nil {
		return false
	}
	claims := &adminClaims{}
	if err := a.parse(c.Value, claims); err != nil {
		return false
	}
	return claims.Role == adminRole
}

// OwnerFromRequest проверяет user_session и возвращает id карточки владельца.
func (a *Authority) OwnerFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(OwnerCookieName)
	if err != nil {
		return "", false
	}
	claims := &ownerClaims{}
	if err := a.parse(c.Value, claims); err != nil {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func (a *Authority) setCookie(w http.ResponseWriter, name string, claims jwt.Claims, ttl time.Duration) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return fmt.Errorf("sign %s: %w", name, err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl.Seconds()),
	})
	return nil
}

func (a *Authority) parse(raw string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	return err
}
