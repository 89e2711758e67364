package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/diagnosis/carnet/internal/domain"
	"github.com/diagnosis/carnet/internal/service"
	"github.com/diagnosis/carnet/pkg/auth"
	"github.com/diagnosis/carnet/pkg/config"
	"github.com/diagnosis/carnet/pkg/logger"
)

type Handlers struct {
	authService    service.AuthService
	contactService service.ContactService
	config         *config.Config
}

func New(
	authService service.AuthService,
	contactService service.ContactService,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:    authService,
		contactService: contactService,
		config:         config,
	}
}

type ctxKey string

const ctxClaims ctxKey = "claims"

// Error codes returned alongside HTTP statuses
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeEmailExists   = "EMAIL_EXISTS"
	CodeInternalError = "INTERNAL_ERROR"
)

// RequireJWT gates protected routes. A missing header and an invalid or
// expired token produce the same response so the reason is not leaked.
func (h *Handlers) RequireJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.Parse(token, h.config.Auth.JWTSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		ctx = context.WithValue(ctx, logger.UserIDKey, claims.Sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(ctxClaims).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// decodeJSON rejects unknown fields so request shapes are exact
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
		"code":  code,
	})
}

// writeServiceError maps domain failures onto the status table; anything
// unrecognized is a 500 with a generic body.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Msg, CodeInvalidInput)
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already in use", CodeEmailExists)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials", CodeUnauthorized)
	default:
		logger.ErrorContext(r.Context(), "Unexpected service error", "error", err)
		if h.config.Server.DebugErrors {
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"code":    CodeInternalError,
				"details": err.Error(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", CodeInternalError)
	}
}
