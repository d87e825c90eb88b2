package health

import (
	"net/http"

	appdir "userdir/internal/app/directory"
	"userdir/internal/http/responses"
)

type Handler struct {
	views appdir.Service
}

func NewHandler(views appdir.Service) *Handler {
	return &Handler{views: views}
}

// Check GET /health
//
//	@Summary	Liveness and number of mounted views
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	apidocs.HealthResponse
//	@Router		/health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"views":  h.views.Len(),
	})
}
