package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wellux/bloglist-backend/internal/api/httpx"
	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/metrics"
	"github.com/wellux/bloglist-backend/internal/services"
)

type Login struct {
	svc *services.UserService
}

func NewLogin(svc *services.UserService) *Login { return &Login{svc: svc} }

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Login) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	res, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	httpx.WriteJSON(w, http.StatusOK, res)
	return nil
}
