package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"filevault/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleChooseDocument handles the Document kind choice
func (h *Handler) handleChooseDocument(c tele.Context) error {
	return h.handleKindChoice(c, "document")
}

// handleChoosePhoto handles the Photo kind choice
func (h *Handler) handleChoosePhoto(c tele.Context) error {
	return h.handleKindChoice(c, "photo")
}

func (h *Handler) handleKindChoice(c tele.Context, raw string) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	state := h.GetState(userID)
	if state.State != domain.StateChoosingType {
		return c.Respond(&tele.CallbackResponse{
			Text: "Nothing to choose right now. Press \"" + btnUploadFile.Text + "\" first.",
		})
	}

	kind, err := domain.ParseFileKind(raw)
	if err != nil {
		h.logger.Warn("Unknown file kind in callback",
			zap.Int64("user_id", userID),
			zap.String("kind", raw),
		)
		h.audit.Record(userID, fmt.Sprintf("invalid file type selection %q", raw))
		h.ResetState(userID)
		return c.Respond(&tele.CallbackResponse{Text: "Unknown file type. Please try again."})
	}

	h.audit.Record(userID, fmt.Sprintf("chose file type %q", kind))

	var text string
	switch kind {
	case domain.KindDocument:
		h.SetState(userID, &domain.StateData{State: domain.StateAwaitingDocument})
		allowed := strings.Join(domain.AllowedDocExtensions(), ", ")
		text = fmt.Sprintf("Please upload a document (%s), or /cancel.", allowed)
	case domain.KindPhoto:
		h.SetState(userID, &domain.StateData{State: domain.StateAwaitingPhoto})
		text = "Please upload a photo, or /cancel."
	}

	if err := c.Edit(text); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text)
	}
	return c.Respond()
}

// handleDeleteFile handles the per-file delete button
func (h *Handler) handleDeleteFile(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	data := cleanCallbackData(c.Data())
	fileID, err := strconv.Atoi(data)
	if err != nil {
		h.logger.Warn("Invalid delete callback data", zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Invalid file reference."})
	}

	if err := h.fileService.DeleteFile(userID, fileID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.audit.Record(userID, fmt.Sprintf("delete of file %d failed: not found", fileID))
			return c.Respond(&tele.CallbackResponse{
				Text:      "File not found or already deleted.",
				ShowAlert: true,
			})
		case errors.Is(err, domain.ErrDeleteFailed):
			h.audit.Record(userID, fmt.Sprintf("delete of file %d failed: disk error", fileID))
			return c.Respond(&tele.CallbackResponse{
				Text:      "Could not delete the file. Please try again later.",
				ShowAlert: true,
			})
		default:
			h.logger.Error("Failed to delete file",
				zap.Int64("user_id", userID),
				zap.Int("file_id", fileID),
				zap.Error(err),
			)
			return c.Respond(&tele.CallbackResponse{
				Text:      "Something went wrong. Please try again later.",
				ShowAlert: true,
			})
		}
	}

	h.logger.Info("File deleted",
		zap.Int64("user_id", userID),
		zap.Int("file_id", fileID),
	)
	h.audit.Record(userID, fmt.Sprintf("deleted file %d", fileID))

	if err := c.Respond(&tele.CallbackResponse{Text: "File deleted."}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	// Mark the listing entry as gone; fall back to removing it entirely
	if c.Message() != nil && c.Message().Text != "" {
		if err := c.Edit(c.Message().Text + "\n\nDeleted"); err != nil {
			h.logger.Warn("Failed to edit message after deletion", zap.Error(err))
			if delErr := c.Delete(); delErr != nil {
				h.logger.Warn("Failed to delete message after edit failure", zap.Error(delErr))
			}
		}
	}

	return nil
}

// handleCancel cancels the current upload flow (command and inline button)
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	state := h.GetState(userID)
	if state.State == domain.StateIdle && c.Callback() == nil {
		return c.Send("Nothing to cancel.", authorizedMenu())
	}

	h.ResetState(userID)
	h.audit.Record(userID, "cancelled upload flow")

	if c.Callback() != nil {
		if err := c.Edit("Cancelled."); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send("Cancelled.", authorizedMenu())
		}
		return c.Respond()
	}

	return c.Send("Cancelled.", authorizedMenu())
}
