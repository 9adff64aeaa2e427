package handlers

import (
	"strings"
	"time"

	"github.com/braianorozco10/portfolio-server/internal/auth"
	"github.com/braianorozco10/portfolio-server/internal/models"
	"github.com/braianorozco10/portfolio-server/utils"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler owns login, logout and the route guard. Credentials come
// from an injected store; sessions are plain JSON cookies the guard only
// checks for presence (see internal/auth).
type AuthHandler struct {
	store *auth.Store
}

func NewAuthHandler(store *auth.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	username := strings.TrimSpace(req.Username)
	role, ok := h.store.Validate(username, req.Password)
	if !ok {
		// One generic message for both bad usernames and bad passwords.
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	session := auth.NewSession(role, username)
	value, err := auth.EncodeSession(session)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	// The record never expires on its own; the far-future cookie expiry
	// mirrors indefinite local storage.
	c.Cookie(&fiber.Cookie{
		Name:    auth.SessionKey,
		Value:   value,
		Path:    "/",
		Expires: time.Now().AddDate(10, 0, 0),
	})

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"username": session.Username,
			"role":     session.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    auth.SessionKey,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Me returns the current session record.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"username": session.Username,
			"role":     session.Role,
		},
	})
}

// RequireSession is the route guard. It only checks that a parseable
// session record is present; there is no server-side validation of the
// record itself. API callers get a 401, page visitors a redirect to
// /login before any protected content is rendered.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	session, ok := auth.DecodeSession(c.Cookies(auth.SessionKey))
	if !ok {
		if strings.HasPrefix(c.Path(), "/api/") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Redirect("/login", fiber.StatusFound)
	}
	c.Locals("session", session)
	return c.Next()
}
