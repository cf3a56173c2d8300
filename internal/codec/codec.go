// Package codec конвертирует вложенные списки карточки между структурной
// формой и плоским текстом хранилища. Вся терпимость к битому legacy-тексту
// живёт здесь: ошибка разбора на чтении никогда не поднимается наверх.
package codec

import "encoding/json"

// ContactEntry — экстренный контакт; Name хранит роль ("Father", "Mother"...).
type ContactEntry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SocialEntry — ссылка на соцсеть.
type SocialEntry struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// extraInfo хранится обёрнутым, наружу отдаётся голой строкой.
type extraInfo struct {
	Note string `json:"note"`
}

// EncodeContacts сериализует список контактов. Пустой список даёт
// канонический текст пустого массива, а не отсутствующее значение.
func EncodeContacts(list []ContactEntry) string {
	return encodeList(list)
}

// DecodeContacts разбирает хранимый текст. Любая ошибка разбора деградирует
// до пустого списка — битые legacy-данные показываются как "нет данных".
func DecodeContacts(raw string) []ContactEntry {
	var list []ContactEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []ContactEntry{}
	}
	return list
}

// EncodeSocial сериализует список соцсетей.
func EncodeSocial(list []SocialEntry) string {
	return encodeList(list)
}

// DecodeSocial разбирает хранимый текст; ошибка → пустой список.
func DecodeSocial(raw string) []SocialEntry {
	var list []SocialEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []SocialEntry{}
	}
	return list
}

// EncodeExtraInfo оборачивает заметку в хранимую форму {note: string}.
func EncodeExtraInfo(note string) string {
	b, _ := json.Marshal(extraInfo{Note: note})
	return string(b)
}

// DecodeExtraInfo разворачивает {note: string} до голой строки;
// ошибка разбора → пустая строка.
func DecodeExtraInfo(raw string) string {
	var ei extraInfo
	if err := json.Unmarshal([]byte(raw), &ei); err != nil {
		return ""
	}
	return ei.Note
}

// NormalizeContacts приводит значение с границы API к хранимому тексту.
// Граница принимает и уже сериализованный текст (JSON-строка), и
// структурный массив; и то и другое нормализуется к каноническому тексту.
func NormalizeContacts(raw json.RawMessage) string {
	if s, ok := unwrapString(raw); ok {
		return s
	}
	return EncodeContacts(DecodeContacts(string(raw)))
}

// NormalizeSocial — то же для соцсетей.
func NormalizeSocial(raw json.RawMessage) string {
	if s, ok := unwrapString(raw); ok {
		return s
	}
	return EncodeSocial(DecodeSocial(string(raw)))
}

func encodeList[T any](list []T) string {
	if list == nil {
		list = []T{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

// unwrapString возвращает содержимое raw, если это JSON-строка:
// вызывающая сторона прислала уже сериализованный текст.
func unwrapString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
