package model

import "time"

// Card — карточка личности, одна строка на человека. ID попадает в QR-код
// и служит публичным ключом поиска и субъектом owner-сессии.
type Card struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	PhotoURL    string `json:"photoUrl"`
	PhoneNumber string `gorm:"index" json:"phoneNumber"` // логин владельца
	Password    string `json:"-"`
	BloodType   string `json:"bloodType"`

	// PIN открывает только мутацию приватной заметки; от Password не зависит.
	PIN      string `json:"-"`
	UserNote string `json:"userNote"`

	// Плоское хранение: extraInfo — JSON-обёртка {note: string}, списки —
	// JSON-массивы. Превращением занимается пакет codec.
	ExtraInfo         string `json:"extraInfo"`
	EmergencyContacts string `json:"emergencyContacts"`
	SocialMedia       string `json:"socialMedia"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
