package handler

import (
	"fmt"
	"sync"

	"filevault/internal/domain"
	"filevault/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	fileService *service.FileService
	audit       *service.AuditService
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	fileService *service.FileService,
	audit *service.AuditService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		fileService: fileService,
		audit:       audit,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/auth", h.handleAuth)
	h.bot.Handle("/cancel", h.handleCancel)

	// Reply keyboard buttons
	h.bot.Handle(&btnAuthorize, h.handleAuthorizeButton)
	h.bot.Handle(&btnUploadFile, h.handleUploadFile)
	h.bot.Handle(&btnMyFiles, h.handleMyFiles)
	h.bot.Handle(&btnLogout, h.handleLogout)

	// Inline buttons
	h.bot.Handle(&btnDocument, h.handleChooseDocument)
	h.bot.Handle(&btnPhoto, h.handleChoosePhoto)
	h.bot.Handle(&btnCancelInline, h.handleCancel)
	h.bot.Handle(&btnDelete, h.handleDeleteFile)

	// Uploads and free text
	h.bot.Handle(tele.OnDocument, h.handleDocument)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)
	h.bot.Handle(tele.OnText, h.handleText)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// expectState returns domain.ErrUnexpectedInput when the user's state
// machine is not in the wanted state. Input arriving outside its state
// must be rejected without a transition.
func (h *Handler) expectState(userID int64, want domain.UserState) error {
	if h.GetState(userID).State != want {
		return domain.ErrUnexpectedInput
	}
	return nil
}

// requireAuthorized checks authorization and sends the rejection message
// itself. Handlers should return early when it reports false.
func (h *Handler) requireAuthorized(c tele.Context) (bool, error) {
	userID := c.Sender().ID

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return false, c.Send("Something went wrong. Please try again later.")
	}

	if !authorized {
		h.logger.Warn("Unauthorized access attempt",
			zap.Int64("user_id", userID),
			zap.Error(domain.ErrNotAuthorized),
		)
		h.audit.Record(userID, "unauthorized access attempt")
		if c.Callback() != nil {
			return false, c.Respond(&tele.CallbackResponse{
				Text:      "This feature is for authorized users only.",
				ShowAlert: true,
			})
		}
		return false, c.Send("This feature is for authorized users only."+authPrompt, unauthorizedMenu())
	}

	return true, nil
}

const authPrompt = "\nUse `/auth <your_key>` or press the Authorize button."

// Reply keyboard buttons
var (
	btnAuthorize  = tele.Btn{Text: "🔑 Authorize"}
	btnUploadFile = tele.Btn{Text: "📤 Upload file"}
	btnMyFiles    = tele.Btn{Text: "📁 My files"}
	btnLogout     = tele.Btn{Text: "🚪 Log out"}
)

// Inline keyboard buttons
var (
	btnDocument = tele.Btn{
		Unique: "kind_document",
		Text:   "📄 Document",
	}
	btnPhoto = tele.Btn{
		Unique: "kind_photo",
		Text:   "🖼 Photo",
	}
	btnCancelInline = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnDelete = tele.Btn{
		Unique: "delete_file",
	}
)

// authorizedMenu returns the main reply keyboard for authorized users
func authorizedMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(btnUploadFile, btnMyFiles),
		menu.Row(btnLogout),
	)
	return menu
}

// unauthorizedMenu returns the reply keyboard for unauthorized users
func unauthorizedMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(btnAuthorize))
	return menu
}

// fileKindMarkup returns the document/photo choice keyboard
func fileKindMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(btnDocument.Text, btnDocument.Unique), markup.Data(btnPhoto.Text, btnPhoto.Unique)),
		markup.Row(markup.Data(btnCancelInline.Text, btnCancelInline.Unique)),
	)
	return markup
}

// deleteMarkup returns a per-file delete button
func deleteMarkup(fileID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🗑 Delete", btnDelete.Unique, fmt.Sprintf("%d", fileID))),
	)
	return markup
}
