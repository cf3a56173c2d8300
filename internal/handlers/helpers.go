package handlers

import (
	"encoding/json"
	"net/http"

	"KisiKart/internal/middleware"
	"KisiKart/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// callerOf собирает типизированную личность вызывающего из сессий запроса;
// дальше она передаётся в контроллер доступа явно.
func callerOf(r *http.Request) service.Caller {
	caller := service.Caller{Admin: middleware.IsAdminFromContext(r.Context())}
	if id, ok := middleware.GetOwnerIDFromContext(r.Context()); ok {
		caller.OwnerID = id
	}
	return caller
}
