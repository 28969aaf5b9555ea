package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	appTrade "github.com/critter-exchange/critter-exchange/internal/application/trade"
	domainTrade "github.com/critter-exchange/critter-exchange/internal/domain/trade"
)

type proposeTradeRequest struct {
	ReceiverID      string `json:"receiverId"`
	RequesterItemID string `json:"requesterItemId"`
	ReceiverItemID  string `json:"receiverItemId"`
}

func (s *Server) proposeTrade(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	var req proposeTradeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	input, err := parseProposeInput(req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if err := s.admitProposal(r.Context(), auth.AccountID, input.ReceiverID); err != nil {
		respondDomainError(w, err)
		return
	}
	t, err := s.tradeSvc.Propose(r.Context(), auth.AccountID, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

func parseProposeInput(req proposeTradeRequest) (appTrade.ProposeInput, error) {
	var input appTrade.ProposeInput
	var err error
	if input.ReceiverID, err = parseUUIDField(req.ReceiverID); err != nil {
		return input, err
	}
	if input.RequesterItemID, err = parseUUIDField(req.RequesterItemID); err != nil {
		return input, err
	}
	if input.ReceiverItemID, err = parseUUIDField(req.ReceiverItemID); err != nil {
		return input, err
	}
	return input, nil
}

func parseUUIDField(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainTrade.ErrInvalidRequest
	}
	return id, nil
}

// admitProposal evaluates the proposal policy before the trade engine sees
// the request. The engine itself only checks ownership and item locks.
func (s *Server) admitProposal(ctx context.Context, requesterID, receiverID uuid.UUID) error {
	areFriends, err := s.friendSvc.AreFriends(ctx, requesterID, receiverID)
	if err != nil {
		return err
	}
	admitted, err := s.tradePolicy.Admit(requesterID.String(), receiverID.String(), areFriends)
	if err != nil {
		return err
	}
	if !admitted {
		return domainTrade.ErrForbidden
	}
	return nil
}

func (s *Server) confirmTrade(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	tradeID, err := parseUUIDParam(r, "tradeId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid tradeId")
		return
	}
	t, err := s.tradeSvc.Confirm(r.Context(), auth.AccountID, tradeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) denyTrade(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	tradeID, err := parseUUIDParam(r, "tradeId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid tradeId")
		return
	}
	t, err := s.tradeSvc.Deny(r.Context(), auth.AccountID, tradeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) listIncomingTrades(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	trades, err := s.tradeSvc.ListIncoming(r.Context(), auth.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"trades": trades})
}

func (s *Server) listOutgoingTrades(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	trades, err := s.tradeSvc.ListOutgoing(r.Context(), auth.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"trades": trades})
}

func (s *Server) listTradesWith(w http.ResponseWriter, r *http.Request) {
	auth := authAccountFromContext(r.Context())
	counterpartyID, err := parseUUIDParam(r, "counterpartyId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid counterpartyId")
		return
	}
	trades, err := s.tradeSvc.ListWithCounterparty(r.Context(), auth.AccountID, counterpartyID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"trades": trades})
}

func (s *Server) listLockedItems(w http.ResponseWriter, r *http.Request) {
	counterpartyID, err := parseUUIDParam(r, "counterpartyId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid counterpartyId")
		return
	}
	locked, err := s.tradeSvc.ListLockedItems(r.Context(), counterpartyID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"lockedItems": locked})
}
