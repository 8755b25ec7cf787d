package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/mr-tron/base58"

	"github.com/pumpwhale/whalerider/internal/dal"
	"github.com/pumpwhale/whalerider/internal/helius"
)

//go:generate mockgen -package mocks -destination mocks/wallets.go . WalletOracle

//go:generate mockgen -package mocks -destination mocks/users.go . UserStore

// ErrInvalidWallet is returned by Verify for input that is not a Solana
// address (base58, 32 bytes decoded).
var ErrInvalidWallet = errors.New("invalid wallet address")

const solanaAddressLen = 32

type (
	// WalletOracle is the read-only chain surface of the access service.
	WalletOracle interface {
		Balances(ctx context.Context, wallet string) (helius.Balances, error)
		Transaction(ctx context.Context, txHash string) (helius.TransferEvent, error)
	}

	UserStore interface {
		GetUser(chatID int64) (dal.User, bool, error)
		PutUser(user dal.User) error
		DeleteUser(chatID int64) error
	}

	AccessConfig struct {
		TokenMint       string
		BurnAddress     string
		MinHolding      float64
		BurnAmount      float64
		PremiumDuration time.Duration
	}

	// Access gates bot features: wallet verification by token holding,
	// premium grants redeemed through burn transactions, and the whale
	// alert subscription toggle.
	Access struct {
		oracle      WalletOracle
		users       UserStore
		subscribers SubscriberStore
		clock       Clock
		conf        AccessConfig

		log *slog.Logger
		mx  sync.Mutex
	}
)

func NewAccess(
	oracle WalletOracle,
	users UserStore,
	subscribers SubscriberStore,
	clock Clock,
	conf AccessConfig,
	log *slog.Logger,
) *Access {
	return &Access{
		oracle:      oracle,
		users:       users,
		subscribers: subscribers,
		clock:       clock,
		conf:        conf,

		log: log.With("component", "service").With("service", "access"),
	}
}

// Verify checks that the wallet holds at least the minimum amount of the
// platform token and persists the verified user on success.
func (a *Access) Verify(ctx context.Context, chatID int64, wallet string) (bool, error) {
	decoded, err := base58.Decode(wallet)
	if err != nil || len(decoded) != solanaAddressLen {
		return false, ErrInvalidWallet
	}

	holds, err := a.holdsMinimum(ctx, wallet)
	if err != nil {
		return false, err
	}
	if !holds {
		return false, nil
	}

	user := dal.User{
		ChatID:     chatID,
		Wallet:     wallet,
		VerifiedAt: a.clock.Now(),
	}
	if existing, found, err := a.users.GetUser(chatID); err == nil && found {
		// re-verification keeps an active premium grant
		user.PremiumUntil = existing.PremiumUntil
	}
	if err := a.users.PutUser(user); err != nil {
		return false, fmt.Errorf("put user: %w", err)
	}

	a.log.InfoContext(ctx, "wallet verified", "chatID", chatID, "wallet", wallet)
	return true, nil
}

// EnsureVerified re-checks the holding of an already verified user and
// revokes the verification when the wallet dropped below the minimum.
func (a *Access) EnsureVerified(ctx context.Context, chatID int64) (bool, error) {
	user, found, err := a.users.GetUser(chatID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return false, nil
	}

	holds, err := a.holdsMinimum(ctx, user.Wallet)
	if err != nil {
		return false, err
	}
	if holds {
		return true, nil
	}

	a.log.InfoContext(ctx, "holding below minimum, revoking verification", "chatID", chatID, "wallet", user.Wallet)
	if err := a.users.DeleteUser(chatID); err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return false, nil
}

// VerifiedWallet returns the verified wallet of a user, if any.
func (a *Access) VerifiedWallet(chatID int64) (string, bool, error) {
	user, found, err := a.users.GetUser(chatID)
	if err != nil {
		return "", false, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return "", false, nil
	}
	return user.Wallet, true, nil
}

// RedeemBurn grants premium when txHash burned at least the configured amount
// of the platform token from the user's verified wallet.
func (a *Access) RedeemBurn(ctx context.Context, chatID int64, txHash string) (bool, error) {
	user, found, err := a.users.GetUser(chatID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return false, nil
	}

	tx, err := a.oracle.Transaction(ctx, txHash)
	if err != nil {
		a.log.WarnContext(ctx, "burn transaction lookup failed", "chatID", chatID, "tx", txHash, "error", err)
		return false, nil
	}

	if !a.isBurn(tx, user.Wallet) {
		return false, nil
	}

	user.PremiumUntil = a.clock.Now().Add(a.conf.PremiumDuration)
	if err := a.users.PutUser(user); err != nil {
		return false, fmt.Errorf("put user: %w", err)
	}

	a.log.InfoContext(ctx, "premium granted", "chatID", chatID, "until", user.PremiumUntil)
	return true, nil
}

// PremiumRemaining returns the remaining premium duration and whether an
// active grant exists.
func (a *Access) PremiumRemaining(chatID int64) (time.Duration, bool, error) {
	user, found, err := a.users.GetUser(chatID)
	if err != nil {
		return 0, false, fmt.Errorf("get user: %w", err)
	}
	if !found || user.PremiumUntil.IsZero() {
		return 0, false, nil
	}

	remaining := user.PremiumUntil.Sub(a.clock.Now())
	if remaining <= 0 {
		return 0, false, nil
	}
	return remaining, true, nil
}

// ToggleSubscription flips the whale alert membership of a chat and returns
// the new state. The mutation is durable before it returns.
func (a *Access) ToggleSubscription(chatID int64) (bool, error) {
	a.mx.Lock()
	defer a.mx.Unlock()

	exists, err := a.subscribers.ExistsSubscriber(chatID)
	if err != nil {
		return false, fmt.Errorf("check subscriber: %w", err)
	}

	if exists {
		if err := a.subscribers.DeleteSubscriber(chatID); err != nil {
			return false, fmt.Errorf("delete subscriber: %w", err)
		}
		a.log.Info("alerts disabled", "chatID", chatID)
		return false, nil
	}

	if err := a.subscribers.PutSubscriber(dal.Subscriber{ChatID: chatID, CreatedAt: a.clock.Now()}); err != nil {
		return false, fmt.Errorf("put subscriber: %w", err)
	}
	a.log.Info("alerts enabled", "chatID", chatID)
	return true, nil
}

func (a *Access) IsSubscribed(chatID int64) (bool, error) {
	exists, err := a.subscribers.ExistsSubscriber(chatID)
	if err != nil {
		return false, fmt.Errorf("check subscriber: %w", err)
	}
	return exists, nil
}

// TokenBalance returns the platform token balance of the user's verified
// wallet; found is false when the user is not verified or holds none.
func (a *Access) TokenBalance(ctx context.Context, chatID int64) (float64, bool, error) {
	user, found, err := a.users.GetUser(chatID)
	if err != nil {
		return 0, false, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return 0, false, nil
	}

	balances, err := a.oracle.Balances(ctx, user.Wallet)
	if err != nil {
		return 0, false, fmt.Errorf("get balances: %w", err)
	}

	for _, token := range balances.Tokens {
		if token.Mint == a.conf.TokenMint {
			return realAmount(token), true, nil
		}
	}
	return 0, false, nil
}

func (a *Access) holdsMinimum(ctx context.Context, wallet string) (bool, error) {
	balances, err := a.oracle.Balances(ctx, wallet)
	if err != nil {
		return false, fmt.Errorf("get balances for wallet=%s: %w", wallet, err)
	}

	for _, token := range balances.Tokens {
		if token.Mint != a.conf.TokenMint {
			continue
		}
		return realAmount(token) >= a.conf.MinHolding, nil
	}
	return false, nil
}

func (a *Access) isBurn(tx helius.TransferEvent, wallet string) bool {
	for _, transfer := range tx.TokenTransfers {
		if transfer.Mint == a.conf.TokenMint &&
			transfer.FromUserAccount == wallet &&
			transfer.ToUserAccount == a.conf.BurnAddress &&
			transfer.TokenAmount >= a.conf.BurnAmount {
			return true
		}
	}
	return false
}

func realAmount(token helius.TokenBalance) float64 {
	return float64(token.Amount) / math.Pow10(token.Decimals)
}
