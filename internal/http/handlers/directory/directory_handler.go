package directory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appdir "userdir/internal/app/directory"
	"userdir/internal/http/request"
	"userdir/internal/http/responses"
	"userdir/internal/logging"
)

type Handler struct {
	views  appdir.Service
	logger logging.Logger
}

func NewHandler(views appdir.Service, logger logging.Logger) *Handler {
	return &Handler{
		views:  views,
		logger: logger.With("component", "directory_http_handler"),
	}
}

// Mount POST /views
//
//	@Summary	Mount a user directory view
//	@Tags		views
//	@Produce	json
//	@Success	201	{object}	apidocs.ViewResponse
//	@Failure	503	{object}	apidocs.ErrorResponse
//	@Router		/views [post]
func (h *Handler) Mount(w http.ResponseWriter, r *http.Request) {
	v, err := h.views.Mount(r.Context())
	if err != nil {
		if errors.Is(err, appdir.ErrRegistryClosed) {
			responses.WriteError(w, http.StatusServiceUnavailable, "shutting down")
			return
		}
		h.logger.Error("failed to mount view", "error", err)
		responses.WriteInternalError(w)
		return
	}

	w.Header().Set("Location", "/api/v1/views/"+v.ID())
	responses.WriteJSON(w, http.StatusCreated, v.Snapshot())
}

// Get GET /views/{id}
//
//	@Summary	Current state of a view
//	@Tags		views
//	@Produce	json
//	@Param		id		path		string	true	"View ID"
//	@Param		wait	query		bool	false	"Block until the initial fetch concludes"
//	@Success	200		{object}	apidocs.ViewResponse
//	@Failure	404		{object}	apidocs.ErrorResponse
//	@Router		/views/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		select {
		case <-v.Done():
		case <-r.Context().Done():
			return
		}
	}

	responses.WriteJSON(w, http.StatusOK, v.Snapshot())
}

// Search PUT /views/{id}/search
//
//	@Summary	Set the search term
//	@Tags		views
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"View ID"
//	@Param		body	body		apidocs.SearchRequest	true	"Search term"
//	@Success	200		{object}	apidocs.ViewResponse
//	@Failure	400		{object}	apidocs.ErrorResponse
//	@Failure	404		{object}	apidocs.ErrorResponse
//	@Router		/views/{id}/search [put]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	var req SearchRequest
	if !request.BindAndValidate(w, r, &req) {
		return
	}

	responses.WriteJSON(w, http.StatusOK, v.SetSearch(req.Term))
}

// Sort POST /views/{id}/sort
//
//	@Summary	Request a sort by column
//	@Description	Same column while ascending flips to descending; anything else sorts ascending.
//	@Tags		views
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"View ID"
//	@Param		body	body		apidocs.SortRequest	true	"Column"
//	@Success	200		{object}	apidocs.ViewResponse
//	@Failure	400		{object}	apidocs.ErrorResponse
//	@Failure	404		{object}	apidocs.ErrorResponse
//	@Router		/views/{id}/sort [post]
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	var req SortRequest
	if !request.BindAndValidate(w, r, &req) {
		return
	}

	key, err := appdir.ParseSortKey(req.Key)
	if err != nil {
		responses.WriteBadRequest(w, err.Error())
		return
	}

	responses.WriteJSON(w, http.StatusOK, v.RequestSort(key))
}

// NextPage POST /views/{id}/page/next
//
//	@Summary	Go to the next page (ignored on the last page)
//	@Tags		views
//	@Produce	json
//	@Param		id	path		string	true	"View ID"
//	@Success	200	{object}	apidocs.ViewResponse
//	@Failure	404	{object}	apidocs.ErrorResponse
//	@Router		/views/{id}/page/next [post]
func (h *Handler) NextPage(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	responses.WriteJSON(w, http.StatusOK, v.NextPage())
}

// PrevPage POST /views/{id}/page/prev
//
//	@Summary	Go to the previous page (ignored on the first page)
//	@Tags		views
//	@Produce	json
//	@Param		id	path		string	true	"View ID"
//	@Success	200	{object}	apidocs.ViewResponse
//	@Failure	404	{object}	apidocs.ErrorResponse
//	@Router		/views/{id}/page/prev [post]
func (h *Handler) PrevPage(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	responses.WriteJSON(w, http.StatusOK, v.PrevPage())
}

// Teardown DELETE /views/{id}
//
//	@Summary	Tear a view down
//	@Tags		views
//	@Param		id	path	string	true	"View ID"
//	@Success	204
//	@Failure	404	{object}	apidocs.ErrorResponse
//	@Router		/views/{id} [delete]
func (h *Handler) Teardown(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.views.Teardown(id); err != nil {
		if appdir.IsNotFound(err) {
			responses.WriteError(w, http.StatusNotFound, "view not found")
			return
		}
		h.logger.Error("failed to tear down view", "error", err, "id", id)
		responses.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) (*appdir.View, bool) {
	id := chi.URLParam(r, "id")
	v, err := h.views.Get(id)
	if err != nil {
		if appdir.IsNotFound(err) {
			responses.WriteError(w, http.StatusNotFound, "view not found")
			return nil, false
		}
		h.logger.Error("failed to get view", "error", err, "id", id)
		responses.WriteInternalError(w)
		return nil, false
	}
	return v, true
}
