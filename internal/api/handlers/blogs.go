package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wellux/bloglist-backend/internal/api/httpx"
	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/metrics"
	"github.com/wellux/bloglist-backend/internal/middleware"
	"github.com/wellux/bloglist-backend/internal/services"
)

type Blogs struct {
	svc *services.BlogService
}

func NewBlogs(svc *services.BlogService) *Blogs { return &Blogs{svc: svc} }

func (h *Blogs) List(w http.ResponseWriter, r *http.Request) error {
	blogs, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, blogs)
	return nil
}

func (h *Blogs) Create(w http.ResponseWriter, r *http.Request) error {
	owner, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		return apperr.Authentication("token missing")
	}
	var in services.BlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apperr.Validation("malformed request body")
	}
	b, err := h.svc.Create(r.Context(), in, owner)
	if err != nil {
		return err
	}
	metrics.BlogsCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, b)
	return nil
}

type updateBlogReq struct {
	Likes int `json:"likes"`
}

func (h *Blogs) Update(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	var req updateBlogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	b, err := h.svc.UpdateLikes(r.Context(), id, req.Likes)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, b)
	return nil
}

func (h *Blogs) Delete(w http.ResponseWriter, r *http.Request) error {
	requester, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		return apperr.Authentication("token missing")
	}
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), requester); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Blogs) Stats(w http.ResponseWriter, r *http.Request) error {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, st)
	return nil
}
