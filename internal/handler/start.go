package handler

import (
	"errors"
	"fmt"
	"strings"

	"filevault/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	username := c.Sender().Username

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", username),
	)

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if user == nil {
		if err := h.authService.RegisterUser(userID, username); err != nil {
			h.logger.Error("Failed to register user", zap.Error(err))
			h.audit.Record(userID, "registration failed")
			return c.Send("Registration failed. Please try again later.")
		}
		h.audit.Record(userID, "registered")
		h.ResetState(userID)
		return c.Send(
			fmt.Sprintf("Hi, %s! You are now registered.%s", username, authPrompt),
			unauthorizedMenu(),
		)
	}

	h.ResetState(userID)

	if !user.Authorized {
		return c.Send(
			fmt.Sprintf("Hi, %s! You are registered but not yet authorized.%s", username, authPrompt),
			unauthorizedMenu(),
		)
	}

	return c.Send(
		fmt.Sprintf("Welcome back, %s!", username),
		authorizedMenu(),
	)
}

// handleAuth handles /auth <key> command
func (h *Handler) handleAuth(c tele.Context) error {
	userID := c.Sender().ID
	username := c.Sender().Username

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}
	if user == nil {
		h.audit.Record(userID, "authorization attempt: not registered")
		return c.Send("Please register first with /start.", unauthorizedMenu())
	}

	if user.Authorized {
		h.audit.Record(userID, "authorization attempt: already authorized")
		return c.Send(fmt.Sprintf("%s, you are already authorized.", username), authorizedMenu())
	}

	key := strings.TrimSpace(c.Message().Payload)
	if key == "" {
		h.audit.Record(userID, "authorization attempt: no key provided")
		return c.Send("Please provide an authorization key. Example: `/auth your_key`")
	}

	if err := h.authService.AuthorizeWithKey(userID, key); err != nil {
		if errors.Is(err, domain.ErrInvalidKey) {
			h.logger.Warn("Authorization failed",
				zap.Int64("user_id", userID),
			)
			h.audit.Record(userID, "authorization attempt: invalid or used key")
			return c.Send("Invalid or already used authorization key.", unauthorizedMenu())
		}

		h.logger.Error("Failed to authorize user", zap.Error(err))
		h.audit.Record(userID, "authorization attempt: internal error")
		return c.Send("Something went wrong during authorization. Please try again later.")
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.audit.Record(userID, "authorized")
	h.ResetState(userID)
	return c.Send(
		fmt.Sprintf("Welcome, %s! Authorization successful.", username),
		authorizedMenu(),
	)
}

// handleAuthorizeButton handles the Authorize reply button
func (h *Handler) handleAuthorizeButton(c tele.Context) error {
	userID := c.Sender().ID
	h.audit.Record(userID, "pressed authorize button")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if user == nil {
		return c.Send("Please register first with /start.")
	}
	if user.Authorized {
		return c.Send("You are already authorized.", authorizedMenu())
	}
	return c.Send("Send `/auth <your_key>` to authorize.")
}

// handleLogout handles the Log out reply button
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	if err := h.authService.Logout(userID); err != nil {
		h.logger.Error("Failed to log out user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetState(userID)
	h.audit.Record(userID, "logged out")
	h.logger.Info("User logged out", zap.Int64("user_id", userID))

	return c.Send("You have been logged out.", unauthorizedMenu())
}
