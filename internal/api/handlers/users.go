package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wellux/bloglist-backend/internal/api/httpx"
	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/metrics"
	"github.com/wellux/bloglist-backend/internal/services"
)

type Users struct {
	svc *services.UserService
}

func NewUsers(svc *services.UserService) *Users { return &Users{svc: svc} }

type createUserReq struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Users) Create(w http.ResponseWriter, r *http.Request) error {
	var req createUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	u, err := h.svc.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, u)
	return nil
}

func (h *Users) List(w http.ResponseWriter, r *http.Request) error {
	users, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, users)
	return nil
}
