package auth

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/mateusvb/auth-api/internal/httputil"
	"github.com/mateusvb/auth-api/internal/logging"
	"github.com/mateusvb/auth-api/internal/ratelimit"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     *Service
	rateLimiter *ratelimit.Limiter
	logger      *logging.Logger
}

func NewHandler(service *Service, rateLimiter *ratelimit.Limiter, logger *logging.Logger) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new user account with username, email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration credentials"
// @Success      201 {object} httputil.MessageResponse
// @Failure      422 {object} httputil.MessageResponse "Validation error or email already in use"
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.limitExceeded(w, r, "register") {
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondMessage(w, "Invalid request body!", http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	newUser, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameRequired):
			httputil.RespondMessage(w, "Please enter a username!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrEmailRequired):
			httputil.RespondMessage(w, "Please enter a email!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrPasswordRequired):
			httputil.RespondMessage(w, "Please enter a password!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrPasswordMismatch):
			httputil.RespondMessage(w, "Passwords do not match!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrEmailTaken):
			logger.Warn("registration failed: email already exists")
			httputil.RespondMessage(w, "Please enter with another email!", http.StatusUnprocessableEntity)
		default:
			logger.Error("registration failed: internal error", "error", err.Error())
			httputil.RespondMessage(w, "Something went wrong! Try again later.", http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	httputil.RespondMessage(w, "User created successfully!", http.StatusCreated)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate user and receive a signed identity token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} LoginResponse
// @Failure      404 {object} httputil.MessageResponse "User not found"
// @Failure      422 {object} httputil.MessageResponse "Validation error or wrong password"
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.limitExceeded(w, r, "login") {
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondMessage(w, "Invalid request body!", http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailRequired):
			httputil.RespondMessage(w, "Please enter a email!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrPasswordRequired):
			httputil.RespondMessage(w, "Please enter a password!", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrUserNotFound):
			logger.Warn("login failed: user not found")
			httputil.RespondMessage(w, "User not found!", http.StatusNotFound)
		case errors.Is(err, ErrWrongPassword):
			logger.Warn("login failed: incorrect password")
			httputil.RespondMessage(w, "Incorrect password!", http.StatusUnprocessableEntity)
		default:
			logger.Error("login failed: internal error", "error", err.Error())
			httputil.RespondMessage(w, "Something went wrong! Try again later.", http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user logged in successfully")

	httputil.RespondJSON(w, LoginResponse{
		Msg:   "User logged in successfully!",
		Token: token,
	}, http.StatusOK)
}

// limitExceeded applies the per-IP rate limit for an auth endpoint and
// writes the 429 response when the caller is over it. Limiter errors fail
// open: an unreachable redis must not lock everyone out.
func (h *Handler) limitExceeded(w http.ResponseWriter, r *http.Request, purpose string) bool {
	if h.rateLimiter == nil {
		return false
	}

	logger := logging.GetLoggerFromContext(r.Context())
	ip := getClientIP(r)

	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, purpose)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
		return false
	}
	if exceeded {
		logger.Warn("IP rate limit exceeded", "ip", ip, "purpose", purpose)
		httputil.RespondMessage(w, "Too many requests! Try again later.", http.StatusTooManyRequests)
		return true
	}

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, purpose); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}
	return false
}

// getClientIP extracts the client IP from the request. chi's RealIP
// middleware has already folded proxy headers into RemoteAddr, but direct
// connections still carry "ip:port"; strip the port so reconnecting does
// not grant a fresh rate-limit window.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// Already a bare IP (RealIP rewrote it from a proxy header)
		return r.RemoteAddr
	}
	return host
}
