package repo

import (
	"context"

	"gorm.io/gorm"

	"KisiKart/internal/model"
)

// AdminRepository — контракт доступа к учёткам администраторов.
type AdminRepository interface {
	// GetByUsername возвращает администратора или gorm.ErrRecordNotFound.
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepository создаёт gorm-реализацию репозитория администраторов.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
