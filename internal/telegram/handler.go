package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/pumpwhale/whalerider/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/access.go . Access

const genericErrorMsg = "Etwas ist schiefgelaufen. Bitte versuche es später erneut."

type stage string

const (
	stageAwaitingWallet stage = "awaiting_wallet"
	stageAwaitingBurnTx stage = "awaiting_burn_tx"
)

type Access interface {
	Verify(ctx context.Context, chatID int64, wallet string) (bool, error)
	EnsureVerified(ctx context.Context, chatID int64) (bool, error)
	VerifiedWallet(chatID int64) (string, bool, error)
	RedeemBurn(ctx context.Context, chatID int64, txHash string) (bool, error)
	PremiumRemaining(chatID int64) (time.Duration, bool, error)
	ToggleSubscription(chatID int64) (bool, error)
	IsSubscribed(chatID int64) (bool, error)
	TokenBalance(ctx context.Context, chatID int64) (float64, bool, error)
}

type Handler struct {
	access Access

	sessions *sessions
	markups  *markups

	log *slog.Logger
}

func NewHandler(access Access, log *slog.Logger) *Handler {
	return &Handler{
		access: access,

		sessions: newSessions(),
		markups:  newMarkups(),

		log: log,
	}
}

// Start handles /start and /menu: verified users get the menu, everyone else
// enters the wallet verification flow.
func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	wallet, verified, err := h.access.VerifiedWallet(chatID)
	if err != nil {
		h.log.Error("failed to look up verified wallet", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	if !verified {
		h.sessions.set(chatID, stageAwaitingWallet)
		return c.Send("Bitte sende deine Wallet-Adresse zur Verifizierung:")
	}

	holds, err := h.access.EnsureVerified(context.Background(), chatID)
	if err != nil {
		h.log.Error("failed to re-check holding", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}
	if !holds {
		h.sessions.clear(chatID)
		return c.Send("❌ Deine Wallet hält aktuell zu wenige Tokens. Bitte erneut /start nutzen, wenn du später wieder Zugang möchtest.")
	}

	msg := fmt.Sprintf("✅ Willkommen zurück! Deine Wallet `%s` ist verifiziert.", wallet)
	return c.Send(msg, h.markups.menu.ReplyMarkup, tb.ModeMarkdown)
}

// Burn handles /burn: premium activation instructions.
func (h *Handler) Burn(c tb.Context) error {
	chatID := c.Sender().ID
	h.sessions.set(chatID, stageAwaitingBurnTx)

	msg := "🔥 Um 7 Tage Premium zu aktivieren, sende *100.000 Tokens* an folgende Burn-Adresse:\n\n" +
		"🔹 Burn-Adresse:\n`11111111111111111111111111111111`\n\n" +
		"➡️ Danach sende den *TX-Hash* dieser Transaktion hier rein."
	return c.Send(msg, tb.ModeMarkdown)
}

// OnText routes free-form messages by session stage.
func (h *Handler) OnText(c tb.Context) error {
	chatID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	switch h.sessions.get(chatID) {
	case stageAwaitingWallet:
		return h.handleWalletInput(c, chatID, text)
	case stageAwaitingBurnTx:
		return h.handleBurnTxInput(c, chatID, text)
	default:
		return c.Send("❓ Bitte nutze /start oder /menu.")
	}
}

func (h *Handler) handleWalletInput(c tb.Context, chatID int64, wallet string) error {
	verified, err := h.access.Verify(context.Background(), chatID, wallet)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWallet) {
			return c.Send("❌ Ungültige Wallet-Adresse.")
		}
		h.log.Error("failed to verify wallet", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}
	if !verified {
		return c.Send("❌ Deine Wallet hält nicht genug Tokens (min. 10.000).")
	}

	h.sessions.clear(chatID)
	return c.Send(fmt.Sprintf("✅ Wallet `%s` erfolgreich verifiziert! Du kannst nun /menu verwenden.", wallet), tb.ModeMarkdown)
}

func (h *Handler) handleBurnTxInput(c tb.Context, chatID int64, txHash string) error {
	if _, verified, err := h.access.VerifiedWallet(chatID); err != nil {
		h.log.Error("failed to look up verified wallet", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	} else if !verified {
		h.sessions.clear(chatID)
		return c.Send("❌ Wallet nicht gefunden. Bitte mit /start erneut verifizieren.")
	}

	redeemed, err := h.access.RedeemBurn(context.Background(), chatID, txHash)
	if err != nil {
		h.log.Error("failed to redeem burn", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	h.sessions.clear(chatID)
	if !redeemed {
		return c.Send("❌ Ungültige Transaktion. Stelle sicher, dass du 100k Tokens an die Burn-Adresse gesendet hast.")
	}
	return c.Send("✅ Premium für 7 Tage aktiviert. Viel Spaß!")
}

// Callback routes inline keyboard presses.
func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	chatID := c.Sender().ID

	// respond first to remove the loading state
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err, "chatID", chatID)
	}

	data := strings.TrimPrefix(callback.Data, "\f")

	switch data {
	case "balance":
		return h.balance(c, chatID)
	case "premium_status":
		return h.premiumStatus(c, chatID)
	case "alerts_toggle":
		return h.toggleAlerts(c, chatID)
	default:
		h.log.Debug("no handler matched for callback", "data", data)
		return nil
	}
}

func (h *Handler) balance(c tb.Context, chatID int64) error {
	amount, found, err := h.access.TokenBalance(context.Background(), chatID)
	if err != nil {
		h.log.Error("failed to fetch balance", "error", err, "chatID", chatID)
		return c.Send("Fehler beim Abrufen der Wallet-Daten.")
	}
	if !found {
		return c.Send("Keine Token gefunden.")
	}
	return c.Send(fmt.Sprintf("📊 Deine Balance: %.2f Token", amount))
}

func (h *Handler) premiumStatus(c tb.Context, chatID int64) error {
	remaining, active, err := h.access.PremiumRemaining(chatID)
	if err != nil {
		h.log.Error("failed to fetch premium status", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}
	if !active {
		return c.Send("🔓 Kein aktives Premium. Verwende /burn für Zugang.")
	}

	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	return c.Send(fmt.Sprintf("✅ Dein Premium ist aktiv für noch %d Tage und %d Stunden.", days, hours))
}

func (h *Handler) toggleAlerts(c tb.Context, chatID int64) error {
	subscribed, err := h.access.ToggleSubscription(chatID)
	if err != nil {
		h.log.Error("failed to toggle subscription", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	h.log.Info("user toggled whale alerts", "chatID", chatID, "subscribed", subscribed)
	if subscribed {
		return c.Send("✅ Whale Alerts aktiviert. Du wirst benachrichtigt, wenn große Käufe stattfinden.")
	}
	return c.Send("🚫 Whale Alerts deaktiviert.")
}

// sessions tracks per-chat conversation stages; handlers for different chats
// run concurrently.
type sessions struct {
	stages map[int64]stage
	mx     sync.Mutex
}

func newSessions() *sessions {
	return &sessions{stages: make(map[int64]stage)}
}

func (s *sessions) get(chatID int64) stage {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.stages[chatID]
}

func (s *sessions) set(chatID int64, st stage) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.stages[chatID] = st
}

func (s *sessions) clear(chatID int64) {
	s.mx.Lock()
	defer s.mx.Unlock()
	delete(s.stages, chatID)
}

type (
	menuMarkup struct {
		*tb.ReplyMarkup
		balance tb.Btn
		premium tb.Btn
		alerts  tb.Btn
	}

	markups struct {
		menu menuMarkup
	}
)

func newMarkups() *markups {
	menu := &tb.ReplyMarkup{}
	balanceBtn := menu.Data("📊 Balance anzeigen", "balance")
	premiumBtn := menu.Data("🔥 Premiumstatus", "premium_status")
	alertsBtn := menu.Data("🚨 Whale Alerts", "alerts_toggle")
	menu.Inline(
		menu.Row(balanceBtn, premiumBtn),
		menu.Row(alertsBtn),
	)

	return &markups{
		menu: menuMarkup{
			ReplyMarkup: menu,
			balance:     balanceBtn,
			premium:     premiumBtn,
			alerts:      alertsBtn,
		},
	}
}
