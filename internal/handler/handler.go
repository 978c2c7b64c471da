package handler

import (
	"sync"

	"wordlearner/internal/domain"
	"wordlearner/internal/drill"
	"wordlearner/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	words    *service.WordService
	sequence *service.SequenceService
	settings *service.SettingsService
	assist   *service.AssistService
	drill    *drill.Runner
	logger   *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Chat the drill posts to, captured when the drill starts
	drillMux  sync.Mutex
	drillChat *tele.Chat
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	words *service.WordService,
	sequence *service.SequenceService,
	settings *service.SettingsService,
	assist *service.AssistService,
	drillRunner *drill.Runner,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		words:    words,
		sequence: sequence,
		settings: settings,
		assist:   assist,
		drill:    drillRunner,
		logger:   logger,
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/edit", h.handleEdit)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/search", h.handleSearch)
	h.bot.Handle("/list", h.handleList)
	h.bot.Handle("/next", h.handleNext)
	h.bot.Handle("/prev", h.handlePrev)
	h.bot.Handle("/drill", h.handleDrill)
	h.bot.Handle("/stop", h.handleStopDrill)
	h.bot.Handle("/settings", h.handleSettings)
	h.bot.Handle("/history", h.handleHistory)
	h.bot.Handle("/ask", h.handleAsk)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnPrev, h.handlePrev)
	h.bot.Handle(&btnAddWord, h.handleAdd)
	h.bot.Handle(&btnSearch, h.handleSearch)
	h.bot.Handle(&btnList, h.handleList)
	h.bot.Handle(&btnHistory, h.handleHistory)
	h.bot.Handle(&btnDrill, h.handleDrill)
	h.bot.Handle(&btnStopDrill, h.handleStopDrill)
	h.bot.Handle(&btnSettings, h.handleSettings)
	h.bot.Handle(&btnToggleMode, h.handleToggleMode)
	h.bot.Handle(&btnToggleTranslation, h.handleToggleTranslation)
	h.bot.Handle(&btnSkipField, h.handleSkipField)
	h.bot.Handle(&btnKeepField, h.handleKeepField)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
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

// Inline keyboard buttons
var (
	btnNext = tele.Btn{
		Unique: "next_word",
		Text:   "➡️ Next",
	}
	btnPrev = tele.Btn{
		Unique: "prev_word",
		Text:   "⬅️ Previous",
	}
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Add word",
	}
	btnSearch = tele.Btn{
		Unique: "search_words",
		Text:   "🔍 Search",
	}
	btnList = tele.Btn{
		Unique: "list_words",
		Text:   "📋 Word list",
	}
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "🕘 History",
	}
	btnDrill = tele.Btn{
		Unique: "start_drill",
		Text:   "▶️ Start drill",
	}
	btnStopDrill = tele.Btn{
		Unique: "stop_drill",
		Text:   "⏹ Stop drill",
	}
	btnSettings = tele.Btn{
		Unique: "settings",
		Text:   "⚙️ Settings",
	}
	btnToggleMode = tele.Btn{
		Unique: "toggle_mode",
		Text:   "🔀 Switch mode",
	}
	btnToggleTranslation = tele.Btn{
		Unique: "toggle_translation",
		Text:   "👁 Translation on/off",
	}
	btnSkipField = tele.Btn{
		Unique: "skip_field",
		Text:   "⏭ Skip",
	}
	btnKeepField = tele.Btn{
		Unique: "keep_field",
		Text:   "↩️ Keep current",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPrev, btnNext),
		menu.Row(btnAddWord, btnSearch),
		menu.Row(btnList, btnHistory),
		menu.Row(btnDrill, btnSettings),
	)
	return menu
}

// cancelMarkup returns a keyboard with a lone cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
