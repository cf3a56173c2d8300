package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"KisiKart/internal/codec"
	"KisiKart/internal/model"
	"KisiKart/internal/service"
)

// CardHandler — HTTP-граница операций над карточками.
type CardHandler struct {
	Cards  *service.CardService
	Logger *zap.SugaredLogger
}

func NewCardHandler(cards *service.CardService, logger *zap.SugaredLogger) *CardHandler {
	return &CardHandler{Cards: cards, Logger: logger}
}

// cardDTO — форма карточки на проводе. Списки отдаются хранимым текстом,
// декодирует вызывающая сторона; extraInfo разворачивается до голой строки.
// Креденшелы (password, pin) наружу не отдаются никогда.
type cardDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PhotoURL          string    `json:"photoUrl"`
	PhoneNumber       string    `json:"phoneNumber"`
	BloodType         string    `json:"bloodType"`
	UserNote          string    `json:"userNote"`
	ExtraInfo         string    `json:"extraInfo"`
	EmergencyContacts string    `json:"emergencyContacts"`
	SocialMedia       string    `json:"socialMedia"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toCardDTO(c *model.Card) cardDTO {
	return cardDTO{
		ID:                c.ID,
		Name:              c.Name,
		PhotoURL:          c.PhotoURL,
		PhoneNumber:       c.PhoneNumber,
		BloodType:         c.BloodType,
		UserNote:          c.UserNote,
		ExtraInfo:         codec.DecodeExtraInfo(c.ExtraInfo),
		EmergencyContacts: c.EmergencyContacts,
		SocialMedia:       c.SocialMedia,
		CreatedAt:         c.CreatedAt,
	}
}

// writeServiceError маппит таксономию ядра на HTTP-статусы.
func (h *CardHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Card not found")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrMalformedInput):
		writeError(w, http.StatusBadRequest, "Invalid request")
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// Get — публичная карточка по id (цель QR-кода).
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	card, err := h.Cards.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}
	writeJSON(w, http.StatusOK, toCardDTO(card))
}

// List — все карточки, самые свежие первыми; только администратору.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Cards.List(r.Context(), callerOf(r))
	if err != nil {
		h.writeServiceError(w, "List", err)
		return
	}
	dtos := make([]cardDTO, 0, len(cards))
	for i := range cards {
		dtos = append(dtos, toCardDTO(&cards[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

type createCardRequest struct {
	Name        string `json:"name"`
	PhotoURL    string `json:"photoUrl"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	BloodType   string `json:"bloodType"`
	ExtraInfo   struct {
		Note string `json:"note"`
	} `json:"extraInfo"`
	EmergencyContacts []codec.ContactEntry `json:"emergencyContacts"`
	SocialMedia       []codec.SocialEntry  `json:"socialMedia"`
}

// Create — создание карточки администратором.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	id, err := h.Cards.Create(r.Context(), callerOf(r), service.CreateCardInput{
		Name:              req.Name,
		PhotoURL:          req.PhotoURL,
		PhoneNumber:       req.PhoneNumber,
		Password:          req.Password,
		BloodType:         req.BloodType,
		ExtraInfoNote:     req.ExtraInfo.Note,
		EmergencyContacts: req.EmergencyContacts,
		SocialMedia:       req.SocialMedia,
	})
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "success": true})
}

// Delete — безусловное удаление администратором.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Cards.Delete(r.Context(), callerOf(r), id); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type updateCardRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	BloodType   *string `json:"bloodType"`
	PhotoURL    *string `json:"photoUrl"`
	Password    *string `json:"password"`
	// списки принимаются и массивом, и уже сериализованным текстом
	EmergencyContacts json.RawMessage `json:"emergencyContacts"`
	SocialMedia       json.RawMessage `json:"socialMedia"`
}

// UpdateProfile — обновление базовых полей владельцем своей карточки или
// администратором любой.
func (h *CardHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateProfile: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.Cards.UpdateProfile(r.Context(), callerOf(r), id, service.UpdateProfileInput{
		Name:              req.Name,
		PhoneNumber:       req.PhoneNumber,
		BloodType:         req.BloodType,
		PhotoURL:          req.PhotoURL,
		Password:          req.Password,
		EmergencyContacts: req.EmergencyContacts,
		SocialMedia:       req.SocialMedia,
	})
	if err != nil {
		h.writeServiceError(w, "UpdateProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type pinRequest struct {
	PIN  string `json:"pin"`
	Note string `json:"note"`
}

// VerifyPIN — pre-flight проверка PIN без побочных эффектов.
func (h *CardHandler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("VerifyPIN: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Cards.VerifyPIN(r.Context(), id, req.PIN); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid PIN")
			return
		}
		h.writeServiceError(w, "VerifyPIN", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateNote — мутация приватной заметки. PIN передаётся в каждом запросе;
// сессии гейт не обходят.
func (h *CardHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateNote: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Cards.UpdateNote(r.Context(), id, req.PIN, req.Note); err != nil {
		h.writeServiceError(w, "UpdateNote", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
