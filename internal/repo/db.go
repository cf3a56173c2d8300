package repo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"

	"KisiKart/internal/model"
)

// Учётка администратора по умолчанию, заводится один раз при инициализации.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// InitDB открывает БД по DSN (postgres:// или путь к sqlite-файлу),
// прогоняет миграции и сеет администратора по умолчанию.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		// чистый Go-драйвер modernc, без cgo
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate добавляет недостающие таблицы и колонки. AutoMigrate аддитивна и
// идемпотентна: повторный прогон не трогает существующие данные.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Card{}, &model.Admin{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := seedDefaultAdmin(db); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	return nil
}

// seedDefaultAdmin создаёт администратора по умолчанию, если его ещё нет.
func seedDefaultAdmin(db *gorm.DB) error {
	a := &model.Admin{
		ID:       uuid.New().String(),
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(a).Error
}
