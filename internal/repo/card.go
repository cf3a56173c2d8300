package repo

import (
	"context"

	"gorm.io/gorm"

	"KisiKart/internal/model"
)

// CardRepository определяет контракт доступа к карточкам для слоя сервиса.
// Все операции однострочные; мультизаписных транзакций нет.
type CardRepository interface {
	// Create вставляет новую карточку.
	Create(ctx context.Context, card *model.Card) error

	// GetByID возвращает карточку по id или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Card, error)

	// GetByPhone возвращает карточку по номеру телефона (логин владельца).
	GetByPhone(ctx context.Context, phone string) (*model.Card, error)

	// ListAll возвращает все карточки, самые свежие первыми.
	ListAll(ctx context.Context) ([]model.Card, error)

	// Update перезаписывает перечисленные колонки целиком (last-write-wins).
	// gorm.ErrRecordNotFound, если карточки нет.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete удаляет карточку безвозвратно; gorm.ErrRecordNotFound, если её нет.
	Delete(ctx context.Context, id string) error
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepository создаёт gorm-реализацию репозитория карточек.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (r *cardRepo) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) GetByPhone(ctx context.Context, phone string) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).First(&card, "phone_number = ?", phone).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) ListAll(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		// нечего писать — но отсутствие карточки всё равно ошибка
		_, err := r.GetByID(ctx, id)
		return err
	}
	tx := r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
