package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"KisiKart/internal/codec"
	"KisiKart/internal/model"
	"KisiKart/internal/repo"
)

// Caller — разрешённая личность запроса: администратор и/или владелец
// карточки OwnerID. Обе сессии независимы и могут присутствовать вместе.
type Caller struct {
	Admin   bool
	OwnerID string
}

// CardService — контроллер доступа: сводит роль вызывающего, PIN-гейт и
// хранилище в авторизованные операции над карточками.
type CardService struct {
	cards  repo.CardRepository
	logger *zap.SugaredLogger
}

func NewCardService(cards repo.CardRepository, logger *zap.SugaredLogger) *CardService {
	return &CardService{cards: cards, logger: logger}
}

// CreateCardInput — полный набор полей при создании. PIN и заметка при
// создании всегда пустые; extraInfo задаётся только здесь.
type CreateCardInput struct {
	Name              string
	PhotoURL          string
	PhoneNumber       string
	Password          string
	BloodType         string
	ExtraInfoNote     string
	EmergencyContacts []codec.ContactEntry
	SocialMedia       []codec.SocialEntry
}

// UpdateProfileInput — частичное обновление профиля. nil-поле не трогается;
// списки приходят сырым JSON (массив или уже сериализованный текст) и
// нормализуются кодеком.
type UpdateProfileInput struct {
	Name              *string
	PhoneNumber       *string
	BloodType         *string
	PhotoURL          *string
	Password          *string
	EmergencyContacts json.RawMessage
	SocialMedia       json.RawMessage
}

// Get — публичное чтение карточки, доступно анониму.
func (s *CardService) Get(ctx context.Context, id string) (*model.Card, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return card, nil
}

// List — полный список карточек, только администратору.
func (s *CardService) List(ctx context.Context, caller Caller) ([]model.Card, error) {
	if !caller.Admin {
		return nil, ErrUnauthorized
	}
	cards, err := s.cards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// Create создаёт карточку, только администратору. Возвращает присвоенный id.
func (s *CardService) Create(ctx context.Context, caller Caller, in CreateCardInput) (string, error) {
	if !caller.Admin {
		return "", ErrUnauthorized
	}
	if in.Name == "" {
		return "", ErrMalformedInput
	}

	card := &model.Card{
		ID:                uuid.New().String(),
		Name:              in.Name,
		PhotoURL:          in.PhotoURL,
		PhoneNumber:       in.PhoneNumber,
		Password:          in.Password,
		BloodType:         in.BloodType,
		PIN:               "",
		UserNote:          "",
		ExtraInfo:         codec.EncodeExtraInfo(in.ExtraInfoNote),
		EmergencyContacts: codec.EncodeContacts(in.EmergencyContacts),
		SocialMedia:       codec.EncodeSocial(in.SocialMedia),
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return "", fmt.Errorf("create card: %w", err)
	}
	s.logger.Infow("card created", "id", card.ID)
	return card.ID, nil
}

// UpdateProfile обновляет базовые поля профиля. Разрешено администратору
// для любой карточки и владельцу строго своей: owner-сессия карточки A
// никогда не авторизует запись в карточку B. Приватную заметку этот путь
// не трогает — она меняется только через PIN-гейт.
func (s *CardService) UpdateProfile(ctx context.Context, caller Caller, id string, in UpdateProfileInput) error {
	if !caller.Admin && caller.OwnerID != id {
		return ErrUnauthorized
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		fields["phone_number"] = *in.PhoneNumber
	}
	if in.BloodType != nil {
		fields["blood_type"] = *in.BloodType
	}
	if in.PhotoURL != nil {
		fields["photo_url"] = *in.PhotoURL
	}
	if in.Password != nil && *in.Password != "" {
		fields["password"] = *in.Password
	}
	if in.EmergencyContacts != nil {
		fields["emergency_contacts"] = codec.NormalizeContacts(in.EmergencyContacts)
	}
	if in.SocialMedia != nil {
		fields["social_media"] = codec.NormalizeSocial(in.SocialMedia)
	}

	if err := s.cards.Update(ctx, id, fields); err != nil {
		return translate(err)
	}
	return nil
}

// Delete удаляет карточку безусловно и безвозвратно, только администратору.
func (s *CardService) Delete(ctx context.Context, caller Caller, id string) error {
	if !caller.Admin {
		return ErrUnauthorized
	}
	if err := s.cards.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.logger.Infow("card deleted", "id", id)
	return nil
}

// VerifyPIN — PIN-гейт без побочных эффектов (pre-flight для UI).
// Сессии не участвуют: PIN сверяется побайтно с хранимым значением,
// пустой хранимый PIN совпадает только с пустым предъявленным.
func (s *CardService) VerifyPIN(ctx context.Context, id, pin string) error {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if !pinMatches(card.PIN, pin) {
		return ErrUnauthorized
	}
	return nil
}

// UpdateNote меняет приватную заметку. PIN обязателен на каждом вызове:
// успешная проверка раньше ничего не авторизует, а валидная owner- или
// admin-сессия гейт не обходит.
func (s *CardService) UpdateNote(ctx context.Context, id, pin, note string) error {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if !pinMatches(card.PIN, pin) {
		return ErrUnauthorized
	}
	if err := s.cards.Update(ctx, id, map[string]any{"user_note": note}); err != nil {
		return translate(err)
	}
	return nil
}

func pinMatches(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// translate сводит ошибки хранилища к таксономии ядра.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
