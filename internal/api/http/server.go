package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	appAccount "github.com/critter-exchange/critter-exchange/internal/application/account"
	appAuth "github.com/critter-exchange/critter-exchange/internal/application/auth"
	appFriend "github.com/critter-exchange/critter-exchange/internal/application/friend"
	appItem "github.com/critter-exchange/critter-exchange/internal/application/item"
	appTrade "github.com/critter-exchange/critter-exchange/internal/application/trade"
	domainAccount "github.com/critter-exchange/critter-exchange/internal/domain/account"
	domainCatalog "github.com/critter-exchange/critter-exchange/internal/domain/catalog"
	domainFriend "github.com/critter-exchange/critter-exchange/internal/domain/friend"
	domainItem "github.com/critter-exchange/critter-exchange/internal/domain/item"
	domainTrade "github.com/critter-exchange/critter-exchange/internal/domain/trade"
	"github.com/critter-exchange/critter-exchange/internal/infrastructure/sse"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authSvc             *appAuth.Service
	accountSvc          *appAccount.Service
	friendSvc           *appFriend.Service
	itemSvc             *appItem.Service
	tradeSvc            *appTrade.Service
	tradePolicy         *appTrade.ProposalPolicy
	sseHub              *sse.Hub
	sessionCookieName   string
	sessionCookieSecure bool
}

func NewServer(
	authSvc *appAuth.Service,
	accountSvc *appAccount.Service,
	friendSvc *appFriend.Service,
	itemSvc *appItem.Service,
	tradeSvc *appTrade.Service,
	tradePolicy *appTrade.ProposalPolicy,
	sseHub *sse.Hub,
	sessionCookieName string,
	sessionCookieSecure bool,
) *Server {
	return &Server{
		authSvc:             authSvc,
		accountSvc:          accountSvc,
		friendSvc:           friendSvc,
		itemSvc:             itemSvc,
		tradeSvc:            tradeSvc,
		tradePolicy:         tradePolicy,
		sseHub:              sseHub,
		sessionCookieName:   sessionCookieName,
		sessionCookieSecure: sessionCookieSecure,
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.Post("/login", s.login)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/logout", s.logout)
				r.Get("/me", s.me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Route("/players", func(r chi.Router) {
				r.Get("/{username}", s.getPlayer)
				r.Put("/me/username", s.changeUsername)
				r.Put("/me/picture", s.changeProfilePicture)
			})

			r.Route("/friends", func(r chi.Router) {
				r.Get("/", s.listFriends)
				r.Post("/requests", s.sendFriendRequest)
				r.Get("/requests", s.listFriendRequests)
				r.Post("/requests/{accountId}/accept", s.acceptFriendRequest)
				r.Post("/requests/{accountId}/deny", s.denyFriendRequest)
				r.Delete("/{accountId}", s.removeFriend)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", s.listOwnInventory)
				r.Get("/of/{accountId}", s.listInventory)
				r.Post("/", s.grantItem)
			})

			r.Route("/trades", func(r chi.Router) {
				r.Post("/", s.proposeTrade)
				r.Get("/incoming", s.listIncomingTrades)
				r.Get("/outgoing", s.listOutgoingTrades)
				r.Get("/with/{counterpartyId}", s.listTradesWith)
				r.Get("/locked/{counterpartyId}", s.listLockedItems)
				r.Post("/{tradeId}/confirm", s.confirmTrade)
				r.Post("/{tradeId}/deny", s.denyTrade)
			})

			r.Get("/events/sse", s.sseEndpoint)
		})
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

// respondDomainError maps domain errors to HTTP statuses.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainTrade.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, domainTrade.ErrNotFound),
		errors.Is(err, domainAccount.ErrNotFound),
		errors.Is(err, domainFriend.ErrNotFound),
		errors.Is(err, domainItem.ErrNotFound),
		errors.Is(err, domainCatalog.ErrSpeciesNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domainTrade.ErrForbidden):
		respondError(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domainTrade.ErrItemLocked):
		respondError(w, http.StatusConflict, "ITEM_LOCKED", err.Error())
	case errors.Is(err, domainTrade.ErrItemNotOwned):
		respondError(w, http.StatusConflict, "ITEM_NOT_OWNED", err.Error())
	case errors.Is(err, domainTrade.ErrAlreadyDecided):
		respondError(w, http.StatusConflict, "ALREADY_DECIDED", err.Error())
	case errors.Is(err, domainTrade.ErrSettlementFailed):
		respondError(w, http.StatusServiceUnavailable, "SETTLEMENT_FAILED", err.Error())
	case errors.Is(err, domainAccount.ErrAlreadyExists),
		errors.Is(err, domainAccount.ErrUsernameTaken),
		errors.Is(err, domainFriend.ErrAlreadyExists),
		errors.Is(err, domainFriend.ErrSelfFriend):
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val := chi.URLParam(r, key)
	return uuid.Parse(val)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
