package httpapi

import (
	"net/http"
)

func (s *Server) listFriends(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	friends, err := s.friendSvc.ListFriends(r.Context(), auth.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"friends": friends})
}

func (s *Server) listFriendRequests(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	requests, err := s.friendSvc.ListIncomingRequests(r.Context(), auth.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

func (s *Server) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if err := s.friendSvc.SendRequest(r.Context(), auth.AccountID, req.Username); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"status": "OK"})
}

func (s *Server) acceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	petitionerID, err := parseUUIDParam(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid accountId")
		return
	}
	if err := s.friendSvc.AcceptRequest(r.Context(), auth.AccountID, petitionerID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}

func (s *Server) denyFriendRequest(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	petitionerID, err := parseUUIDParam(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid accountId")
		return
	}
	if err := s.friendSvc.DenyRequest(r.Context(), auth.AccountID, petitionerID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}

func (s *Server) removeFriend(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	friendID, err := parseUUIDParam(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid accountId")
		return
	}
	if err := s.friendSvc.RemoveFriend(r.Context(), auth.AccountID, friendID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}
