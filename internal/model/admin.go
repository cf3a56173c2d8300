package model

import "time"

// Admin — учётная запись администратора. Ядро никогда их не удаляет.
type Admin struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
