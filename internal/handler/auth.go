package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/occupancy-tracker/internal/config"
	"github.com/classtrack/occupancy-tracker/internal/middleware"
	"github.com/classtrack/occupancy-tracker/internal/repository"
	"github.com/classtrack/occupancy-tracker/internal/session"
	"github.com/classtrack/occupancy-tracker/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts AccountStore
	Sessions session.Store
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, a AccountStore, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a, Sessions: s}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type loginResp struct {
	Account accountPart `json:"account"`
	Access  tokenPart   `json:"access"`
}

// Register creates an account. Usernames are matched case-sensitively
// and must be unique; a duplicate yields 409. Accounts are immutable
// once created, so this is the only write path for the accounts table.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Accounts.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	return c.JSON(http.StatusCreated, accountPart{ID: id, Username: req.Username})
}

// Login verifies credentials, opens a server-side session delivered as
// an HttpOnly cookie, and additionally returns a bearer access token
// for clients that do not keep cookies. Unknown usernames and wrong
// passwords produce the same 401 so the response never reveals whether
// an account exists.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	ttl := time.Duration(h.Cfg.SessionTTLHrs) * time.Hour
	if err := h.Sessions.Put(ctx, token, acct.ID, ttl); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acct.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, loginResp{
		Account: accountPart{ID: acct.ID, Username: acct.Username},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes the server-side session named by the cookie and
// clears the cookie. Logging out without a session is a no-op 204, so
// the endpoint does not sit behind the auth middleware.
func (h *AuthHandler) Logout(c echo.Context) error {
	ck, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && ck.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		_ = h.Sessions.Delete(ctx, ck.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	id := middleware.AccountID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load account failed"})
	}
	return c.JSON(http.StatusOK, accountPart{ID: acct.ID, Username: acct.Username})
}
