// internal/app/features/login/login.go
package login

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/lexsite/lexsite/internal/app/features/errors"
	adminstore "github.com/lexsite/lexsite/internal/app/store/admins"
	"github.com/lexsite/lexsite/internal/app/store/ratelimit"
	"github.com/lexsite/lexsite/internal/app/system/auth"
	"github.com/lexsite/lexsite/internal/app/system/authutil"
	"github.com/lexsite/lexsite/internal/app/system/normalize"
	"github.com/lexsite/lexsite/internal/app/system/viewdata"
)

// Handler provides the admin sign-in handlers.
type Handler struct {
	admins         *adminstore.Store
	rateLimitStore *ratelimit.Store // nil if rate limiting disabled
	sessionMgr     *auth.SessionManager
	errLog         *errorsfeature.ErrorLogger
	logger         *zap.Logger
}

// NewHandler creates a new login Handler.
// rateLimitStore can be nil to disable rate limiting.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	rateLimitStore *ratelimit.Store,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		admins:         adminstore.New(db),
		rateLimitStore: rateLimitStore,
		sessionMgr:     sessionMgr,
		errLog:         errLog,
		logger:         logger,
	}
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)
	return r
}

// LoginVM is the view model for the sign-in form.
type LoginVM struct {
	viewdata.BaseVM
	Error string
	Email string
}

// showLogin displays the sign-in form. A signed-in admin is sent straight
// to the console.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	vm := LoginVM{BaseVM: viewdata.New(r)}
	vm.Title = "Sign In"
	templates.Render(w, r, "login/password", vm)
}

// handleLogin processes the sign-in form.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse login form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	fail := func(msg string) {
		vm := LoginVM{BaseVM: viewdata.New(r), Error: msg, Email: email}
		vm.Title = "Sign In"
		templates.Render(w, r, "login/password", vm)
	}

	if email == "" || password == "" {
		fail("Email and password are required.")
		return
	}

	// Check the rate limit before touching credentials.
	if h.rateLimitStore != nil {
		allowed, _, lockedUntil := h.rateLimitStore.CheckAllowed(r.Context(), email)
		if !allowed {
			fail(lockoutMessage(lockedUntil))
			return
		}
	}

	admin, err := h.admins.GetByEmail(r.Context(), email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if h.rateLimitStore != nil {
				h.rateLimitStore.RecordFailure(r.Context(), email)
			}
			fail("Invalid email or password.")
			return
		}
		h.errLog.Log(r, "database error during login lookup", err)
		fail("Service temporarily unavailable. Please try again.")
		return
	}

	if admin.Status != "active" {
		h.logger.Warn("sign-in attempt for disabled account", zap.String("email", email))
		fail("This account has been disabled.")
		return
	}

	if !authutil.CheckPassword(password, admin.PasswordHash) {
		if h.rateLimitStore != nil {
			if lockedOut, lockedUntil := h.rateLimitStore.RecordFailure(r.Context(), email); lockedOut {
				fail(lockoutMessage(lockedUntil))
				return
			}
		}
		fail("Invalid email or password.")
		return
	}

	if h.rateLimitStore != nil {
		if err := h.rateLimitStore.ClearOnSuccess(r.Context(), email); err != nil {
			h.logger.Warn("failed to clear rate limit record", zap.Error(err))
		}
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		h.errLog.Log(r, "failed to generate session token", err)
		fail("Service temporarily unavailable. Please try again.")
		return
	}

	if err := h.sessionMgr.CreateSession(w, r, admin.ID, admin.Role, token); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		fail("Service temporarily unavailable. Please try again.")
		return
	}

	if err := h.admins.TouchLogin(r.Context(), admin.ID); err != nil {
		h.logger.Warn("failed to record last login", zap.Error(err))
	}

	h.logger.Info("admin signed in", zap.String("email", email))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func lockoutMessage(lockedUntil *time.Time) string {
	if lockedUntil == nil {
		return "Too many failed sign-in attempts. Please try again later."
	}
	remaining := time.Until(*lockedUntil)
	if remaining > time.Minute {
		return fmt.Sprintf("Too many failed sign-in attempts. Please try again in %d minute(s).", int(remaining.Minutes())+1)
	}
	return fmt.Sprintf("Too many failed sign-in attempts. Please try again in %d second(s).", int(remaining.Seconds())+1)
}
