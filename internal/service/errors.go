package service

import "errors"

// Таксономия ошибок ядра. Всё остальное от хранилища — generic internal.
var (
	ErrNotFound           = errors.New("card not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedInput     = errors.New("malformed input")
)
