// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"cliphub/internal/delivery/http/response"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/errors"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	flowCookieName   = "link_flow"
	returnCookieName = "link_return"
)

// ConnectHandler holds dependencies for the account linking handlers.
type ConnectHandler struct {
	uc     usecase.LinkingUsecase
	logger *slog.Logger
}

// NewConnectHandler is the constructor for ConnectHandler, injected by Fx.
func NewConnectHandler(uc usecase.LinkingUsecase, logger *slog.Logger) *ConnectHandler {
	return &ConnectHandler{
		uc:     uc,
		logger: logger,
	}
}

// linkedAccountView is the API shape of a linked account. Tokens never leave
// the server, so they have no place here.
type linkedAccountView struct {
	Platform          string     `json:"platform"`
	ExternalAccountID string     `json:"external_account_id"`
	Username          string     `json:"username"`
	ProfileURL        string     `json:"profile_url"`
	FollowerCount     int64      `json:"follower_count"`
	TokenExpiry       *time.Time `json:"token_expiry,omitempty"`
	LastSync          time.Time  `json:"last_sync"`
	LinkedAt          time.Time  `json:"linked_at"`
}

func toLinkedAccountView(account *entity.SocialAccount) linkedAccountView {
	return linkedAccountView{
		Platform:          account.Platform.String(),
		ExternalAccountID: account.ExternalAccountID,
		Username:          account.Username,
		ProfileURL:        account.ProfileURL,
		FollowerCount:     account.FollowerCount,
		TokenExpiry:       account.TokenExpiry,
		LastSync:          account.LastSync,
		LinkedAt:          account.CreatedAt,
	}
}

// Connect starts the linking flow for a platform. With redirect=true the
// browser is sent straight to the provider's consent screen; otherwise the
// authorization URL is returned as JSON for the frontend to use.
func (h *ConnectHandler) Connect(c echo.Context) error {
	platform, err := entity.ParsePlatform(c.Param("platform"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUnknownPlatform.ErrorCode(), "Unknown platform: "+c.Param("platform"))
	}

	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	returnTo := c.QueryParam("return_to")
	if returnTo == "" {
		returnTo = "/"
	}

	result, err := h.uc.BeginLink(c.Request().Context(), userID, platform, returnTo)
	if err != nil {
		return errors.WithStack(err)
	}

	setFlowCookie(c, flowCookieName, result.FlowKey)
	setFlowCookie(c, returnCookieName, returnTo)

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, result.AuthorizationURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": result.AuthorizationURL,
	}, "Authorization URL generated successfully")
}

// Callback finishes the flow when the provider redirects back. The flow
// cookie is cleared no matter how the flow ends; the browser lands on the
// original return_to with either linked=<platform> or link_error=<code>.
func (h *ConnectHandler) Callback(c echo.Context) error {
	returnTo := "/"
	if cookie, err := c.Cookie(returnCookieName); err == nil && cookie.Value != "" {
		returnTo = cookie.Value
	}

	flowKey := ""
	if cookie, err := c.Cookie(flowCookieName); err == nil {
		flowKey = cookie.Value
	}

	clearFlowCookie(c, flowCookieName)
	clearFlowCookie(c, returnCookieName)

	input := usecase.CallbackInput{
		Code:             c.QueryParam("code"),
		State:            c.QueryParam("state"),
		ErrorCode:        c.QueryParam("error"),
		ErrorDescription: c.QueryParam("error_description"),
	}

	account, err := h.uc.CompleteLink(c.Request().Context(), flowKey, input)
	if err != nil {
		code := domainerrors.ErrInternalError.ErrorCode()
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			code = appErr.ErrorCode()
		}
		h.logger.Warn("Linking flow failed",
			slog.String("platform", c.Param("platform")),
			slog.String("error_code", code),
		)

		return c.Redirect(http.StatusFound, appendQuery(returnTo, "link_error", code))
	}

	return c.Redirect(http.StatusFound, appendQuery(returnTo, "linked", account.Platform.String()))
}

// Disconnect removes the user's linked account on a platform.
func (h *ConnectHandler) Disconnect(c echo.Context) error {
	platform, err := entity.ParsePlatform(c.Param("platform"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUnknownPlatform.ErrorCode(), "Unknown platform: "+c.Param("platform"))
	}

	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Disconnect(c.Request().Context(), userID, platform); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"platform": platform.String()}, "Account disconnected successfully")
}

// List returns the user's linked accounts for the dashboard.
func (h *ConnectHandler) List(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	accounts, err := h.uc.LinkedAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]linkedAccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toLinkedAccountView(account))
	}

	return response.Success(c, http.StatusOK, views, "Linked accounts retrieved successfully")
}

func setFlowCookie(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/connect",
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearFlowCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/connect",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func appendQuery(rawURL, key, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "/?" + key + "=" + url.QueryEscape(value)
	}

	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()

	return u.String()
}
