package httpapi

import (
	"net/http"
)

func (s *Server) listOwnInventory(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	items, err := s.itemSvc.ListInventory(r.Context(), auth.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUUIDParam(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid accountId")
		return
	}
	items, err := s.itemSvc.ListInventory(r.Context(), ownerID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) grantItem(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	var req struct {
		SpeciesID int `json:"speciesId"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	it, err := s.itemSvc.Grant(r.Context(), auth.AccountID, req.SpeciesID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, it)
}
