package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"KisiKart/internal/repo"
)

// Role — результат логина: администратор или владелец карточки.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "user"
)

// AuthService проверяет креденшелы на входе. Сессии не его забота —
// их выпускает session.Authority по результату логина.
type AuthService struct {
	admins   repo.AdminRepository
	cards    repo.CardRepository
	verifier CredentialVerifier
}

func NewAuthService(admins repo.AdminRepository, cards repo.CardRepository, verifier CredentialVerifier) *AuthService {
	return &AuthService{admins: admins, cards: cards, verifier: verifier}
}

// Login сравнивает identifier/credential сначала с учёткой администратора
// (по username), при неудаче — с карточкой владельца (identifier как номер
// телефона). Порядок "администратор первым" — намеренный наблюдаемый
// tie-break. Для владельца вторым значением возвращается id его карточки.
func (s *AuthService) Login(ctx context.Context, identifier, credential string) (Role, string, error) {
	admin, err := s.admins.GetByUsername(ctx, identifier)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", fmt.Errorf("admin lookup: %w", err)
	}
	if err == nil && s.verifier.Verify(admin.Password, credential) {
		return RoleAdmin, "", nil
	}

	card, err := s.cards.GetByPhone(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("card lookup: %w", err)
	}
	if !s.verifier.Verify(card.Password, credential) {
		return "", "", ErrInvalidCredentials
	}
	return RoleOwner, card.ID, nil
}
