package handler

import (
	"errors"
	"fmt"
	"strings"

	"filevault/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleUploadFile starts the upload flow
func (h *Handler) handleUploadFile(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	h.audit.Record(userID, "started upload flow")
	h.SetState(userID, &domain.StateData{State: domain.StateChoosingType})

	return c.Send("Choose the type of file to upload:", fileKindMarkup())
}

// handleDocument handles an incoming document upload
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	if err := h.expectState(userID, domain.StateAwaitingDocument); err != nil {
		h.logger.Info("Rejected document upload",
			zap.Int64("user_id", userID),
			zap.String("state", string(h.GetState(userID).State)),
			zap.Error(err),
		)
		h.audit.Record(userID, "unexpected document upload")
		return c.Send("I wasn't expecting a file. Press \"" + btnUploadFile.Text + "\" to start an upload.")
	}

	doc := c.Message().Document
	originalName := doc.FileName
	if originalName == "" {
		originalName = "unknown_document"
	}

	src, err := h.bot.File(doc.MediaFile())
	if err != nil {
		h.logger.Error("Failed to download document",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.audit.Record(userID, "document download failed")
		return c.Send("Could not download the file. Send it again or /cancel.")
	}
	defer src.Close()

	stored, err := h.fileService.StoreDocument(userID, originalName, src)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFileType) {
			// Stay in awaiting state so the user can retry
			h.audit.Record(userID, fmt.Sprintf("rejected document %q: unsupported type", originalName))
			allowed := strings.Join(domain.AllowedDocExtensions(), ", ")
			return c.Send(fmt.Sprintf("Unsupported file type. Allowed: %s.\nSend another file or /cancel.", allowed))
		}

		h.logger.Error("Failed to store document",
			zap.Int64("user_id", userID),
			zap.String("filename", originalName),
			zap.Error(err),
		)
		h.audit.Record(userID, fmt.Sprintf("failed to store document %q", originalName))
		return c.Send("Could not save the file. Send it again or /cancel.")
	}

	h.logger.Info("Document stored",
		zap.Int64("user_id", userID),
		zap.Int("file_id", stored.ID),
		zap.String("filename", originalName),
	)
	h.audit.Record(userID, fmt.Sprintf("uploaded document %q", originalName))
	h.ResetState(userID)

	return c.Send(fmt.Sprintf("Document '%s' uploaded!", originalName), authorizedMenu())
}

// handlePhoto handles an incoming photo upload
func (h *Handler) handlePhoto(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	if err := h.expectState(userID, domain.StateAwaitingPhoto); err != nil {
		h.logger.Info("Rejected photo upload",
			zap.Int64("user_id", userID),
			zap.String("state", string(h.GetState(userID).State)),
			zap.Error(err),
		)
		h.audit.Record(userID, "unexpected photo upload")
		return c.Send("I wasn't expecting a photo. Press \"" + btnUploadFile.Text + "\" to start an upload.")
	}

	photo := c.Message().Photo

	src, err := h.bot.File(photo.MediaFile())
	if err != nil {
		h.logger.Error("Failed to download photo",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.audit.Record(userID, "photo download failed")
		return c.Send("Could not download the photo. Send it again or /cancel.")
	}
	defer src.Close()

	stored, err := h.fileService.StorePhoto(userID, src)
	if err != nil {
		h.logger.Error("Failed to store photo",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.audit.Record(userID, "failed to store photo")
		return c.Send("Could not save the photo. Send it again or /cancel.")
	}

	h.logger.Info("Photo stored",
		zap.Int64("user_id", userID),
		zap.Int("file_id", stored.ID),
	)
	h.audit.Record(userID, "uploaded photo")
	h.ResetState(userID)

	return c.Send("Photo uploaded!", authorizedMenu())
}

// handleMyFiles lists the user's uploaded files
func (h *Handler) handleMyFiles(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.requireAuthorized(c)
	if !authorized {
		return err
	}

	h.audit.Record(userID, "listed files")

	files, err := h.fileService.ListFiles(userID)
	if err != nil {
		h.logger.Error("Failed to list files", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if len(files) == 0 {
		return c.Send("You haven't uploaded any files yet.")
	}

	if err := c.Send("Your uploaded files:"); err != nil {
		return err
	}

	for _, f := range files {
		if err := c.Send(formatFileInfo(f), deleteMarkup(f.ID)); err != nil {
			h.logger.Error("Failed to send file info",
				zap.Int("file_id", f.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// handleText handles free text based on the current state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are routed separately
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if !authorized {
		return c.Send("You are not authorized."+authPrompt, unauthorizedMenu())
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateChoosingType:
		h.audit.Record(userID, "sent text instead of choosing file type")
		return c.Send("Please press one of the buttons above (Document or Photo), or /cancel.")

	case domain.StateAwaitingDocument:
		h.audit.Record(userID, "sent text while awaiting document")
		allowed := strings.Join(domain.AllowedDocExtensions(), ", ")
		return c.Send(fmt.Sprintf("Expecting a document file (%s). Send a file or /cancel.", allowed))

	case domain.StateAwaitingPhoto:
		h.audit.Record(userID, "sent text while awaiting photo")
		return c.Send("Expecting a photo. Send a photo or /cancel.")

	default:
		return c.Send("Use the menu below:", authorizedMenu())
	}
}

// formatFileInfo renders one stored file for the listing
func formatFileInfo(f domain.StoredFile) string {
	uploaded := "N/A"
	if !f.UploadedAt.IsZero() {
		uploaded = f.UploadedAt.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf(
		"File #%d\nUploaded: %s\nType: %s\nName: %s",
		f.ID, uploaded, f.Kind.Display(), f.OriginalFilename,
	)
}
