package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type playerResponse struct {
	AccountID      string  `json:"accountId"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	a, err := s.accountSvc.GetByUsername(r.Context(), username)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, playerResponse{
		AccountID:      a.AccountID.String(),
		Username:       a.Username,
		ProfilePicture: a.ProfilePicture,
	})
}

func (s *Server) changeUsername(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if err := s.accountSvc.ChangeUsername(r.Context(), auth.AccountID, req.Username); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}

func (s *Server) changeProfilePicture(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	var req struct {
		PictureURL string `json:"pictureUrl"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if err := s.accountSvc.ChangeProfilePicture(r.Context(), auth.AccountID, req.PictureURL); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}
