package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/services"
	"github.com/localnerve/staffdir/internal/utils"
)

// AuthHandler handles login, logout and session probes
type AuthHandler struct {
	Auth *services.Authenticator
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify a username/password pair and establish a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "Username and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}
	if body.Username == "" || body.Password == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	token, session, err := h.Auth.Login(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.login")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.Auth.CookieName(),
		Value:    token,
		Expires:  time.Now().Add(h.Auth.Expiry()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":       true,
		"username": session.Username,
		"name":     session.Name,
		"email":    session.Email,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Drop the session and clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout(c.Cookies(h.Auth.CookieName()))

	c.Cookie(&fiber.Cookie{
		Name:     h.Auth.CookieName(),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.MessageResponse(c, "Logged out")
}

// GetSession handles GET /api/auth/session
// @Summary Current session
// @Description Return the authenticated user behind the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	session := sessionFrom(c)
	if session == nil {
		return utils.ErrorResponse(c, "Please log in", fiber.StatusUnauthorized, "directory.authorization.user")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":       true,
		"username": session.Username,
		"name":     session.Name,
		"email":    session.Email,
	})
}
