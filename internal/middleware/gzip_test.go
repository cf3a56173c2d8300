package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// cardPayload — типичный ответ GET /api/cards/{id}: плоские JSON-текстовые
// поля делают тело хорошо сжимаемым.
const cardPayload = `{"id":"8d6c","name":"Ayşe Yılmaz","bloodType":"A+","extraInfo":"diabetic","emergencyContacts":"[{\"name\":\"Father\",\"phone\":\"+905551234567\"}]","socialMedia":"[]"}`

func cardHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cardPayload))
	})
}

// Тест: клиент без Accept-Encoding: gzip получает карточку как есть
func TestWithGzip_NoAcceptEncoding(t *testing.T) {
	h := WithGzip(cardHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/cards/8d6c", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status want 200, got %d", rr.Code)
	}
	if ce := rr.Header().Get("Content-Encoding"); ce != "" {
		t.Fatalf("unexpected Content-Encoding: %q", ce)
	}
	if rr.Body.String() != cardPayload {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

// Тест: с Accept-Encoding: gzip карточка сжимается и распаковывается
// в исходный JSON; выставленный хендлером Content-Length снимается
func TestWithGzip_WithAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// намеренно ставим Content-Length, чтобы убедиться, что мидлварь его убирает
		w.Header().Set("Content-Length", "999")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cardPayload))
	})
	h := WithGzip(next)

	req := httptest.NewRequest(http.MethodGet, "/api/cards/8d6c", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip Content-Encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
	if cl := rr.Header().Get("Content-Length"); cl == "999" {
		t.Fatalf("stale Content-Length survived: %q", cl)
	}

	// распаковываем и убеждаемся, что карточка доехала без искажений
	gr, err := gzip.NewReader(bytes.NewReader(rr.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to create gzip reader: %v", err)
	}
	defer gr.Close()
	data, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("failed to read gzipped body: %v", err)
	}
	if string(data) != cardPayload {
		t.Fatalf("unexpected ungzipped body: %q", string(data))
	}
	var card map[string]any
	if err := json.Unmarshal(data, &card); err != nil {
		t.Fatalf("ungzipped body is not valid card JSON: %v", err)
	}
	if card["name"] != "Ayşe Yılmaz" {
		t.Fatalf("card name corrupted: %v", card["name"])
	}
}
