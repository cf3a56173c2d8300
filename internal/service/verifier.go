package service

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier изолирует сравнение пароля с хранимым значением:
// контроллер доступа не знает, хранится пароль открыто или хешем.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// PlainVerifier — побайтовое сравнение, функциональный паритет с legacy-базой.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	return stored != "" && stored == presented
}

// BcryptVerifier — для развёртываний, где в колонке пароля лежит bcrypt-хеш.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// NewVerifier выбирает схему по конфигу ("bcrypt" | "plain").
func NewVerifier(scheme string) CredentialVerifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
