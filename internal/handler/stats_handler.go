package handlers

import (
	"net/http"
)

// HealthHandler - проверка живости сервера
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Stats - количество записей в документе, диагностика
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsService.GetCounts(r.Context())
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, counts, http.StatusOK)
}
