package api

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/meera-jewels/meera/internal/auth"
)

type authAPIHandler struct {
	sessions *scs.SessionManager
	auth     *auth.Manager
}

func registerAuthRoutes(r chi.Router, sm *scs.SessionManager, am *auth.Manager) {
	h := &authAPIHandler{sessions: sm, auth: am}
	r.Post("/auth/login", h.Login)
	r.Post("/auth/register", h.Register)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/me", h.Me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User            *auth.User `json:"user"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	IsAdmin         bool       `json:"isAdmin"`
}

func (h *authAPIHandler) session(r *http.Request) *auth.SessionStore {
	clientID := auth.ClientID(r.Context(), h.sessions)
	return h.auth.For(r.Context(), clientID)
}

// Login checks the posted credentials against the mock registry.
// POST /api/v1/auth/login
func (h *authAPIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", "VALIDATION_ERROR")
		return
	}

	store := h.session(r)
	if !store.Login(r.Context(), req.Email, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	// New privilege level, new session token.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		User:            store.Current(),
		IsAuthenticated: true,
		IsAdmin:         store.IsAdmin(),
	})
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Anniversary string `json:"anniversary"`
}

// Register appends a new customer to the registry and logs them in.
// POST /api/v1/auth/register
func (h *authAPIHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email, and password are required", "VALIDATION_ERROR")
		return
	}

	store := h.session(r)
	ok := store.Register(r.Context(), auth.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Anniversary: req.Anniversary,
	})
	if !ok {
		writeError(w, http.StatusConflict, "email is already registered", "EMAIL_TAKEN")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		User:            store.Current(),
		IsAuthenticated: true,
		IsAdmin:         false,
	})
}

// Logout clears the logged-in profile. The client keeps its session and
// cart; only the identity goes away.
// POST /api/v1/auth/logout
func (h *authAPIHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session(r).Logout(r.Context())
	writeJSON(w, http.StatusOK, sessionResponse{})
}

// Me reports the current session's identity state. Never an error; a
// logged-out session gets a null user.
// GET /api/v1/auth/me
func (h *authAPIHandler) Me(w http.ResponseWriter, r *http.Request) {
	store := h.session(r)
	u := store.Current()
	writeJSON(w, http.StatusOK, sessionResponse{
		User:            u,
		IsAuthenticated: u != nil,
		IsAdmin:         u != nil && u.IsAdmin(),
	})
}
