package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pumpwhale/whalerider/internal/dal"
	"github.com/pumpwhale/whalerider/internal/helius"
	"github.com/pumpwhale/whalerider/internal/service"
	"github.com/pumpwhale/whalerider/internal/service/mocks"
	"github.com/pumpwhale/whalerider/pkg/clock"
)

const (
	testWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	testChatID = int64(123)
)

var testAccessConf = service.AccessConfig{
	TokenMint:       "token-mint",
	BurnAddress:     "burn-addr",
	MinHolding:      10_000,
	BurnAmount:      100_000,
	PremiumDuration: 7 * 24 * time.Hour,
}

func holding(amount int64) helius.Balances {
	return helius.Balances{
		Tokens: []helius.TokenBalance{
			{Mint: "token-mint", Amount: amount, Decimals: 6},
		},
	}
}

func newAccess(t *testing.T, ctrl *gomock.Controller, now time.Time) (*service.Access, *mocks.MockWalletOracle, *mocks.MockUserStore, *mocks.MockSubscriberStore) {
	t.Helper()

	oracle := mocks.NewMockWalletOracle(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	subscribers := mocks.NewMockSubscriberStore(ctrl)

	a := service.NewAccess(oracle, users, subscribers, clock.NewMock(now), testAccessConf, slog.New(slog.DiscardHandler))
	return a, oracle, users, subscribers
}

func TestAccess_Verify(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	t.Run("invalid_wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, _, _ := newAccess(t, ctrl, now)

		for _, wallet := range []string{"", "not-a-wallet", "abc"} {
			_, err := a.Verify(context.Background(), testChatID, wallet)
			assert.ErrorIs(t, err, service.ErrInvalidWallet, "wallet: %q", wallet)
		}
	})

	t.Run("below_minimum_holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, _, _ := newAccess(t, ctrl, now)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(9_999_999_999), nil)

		ok, err := a.Verify(context.Background(), testChatID, testWallet)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(10_000_000_000), nil)
		users.EXPECT().GetUser(testChatID).Return(dal.User{}, false, nil)
		users.EXPECT().PutUser(dal.User{
			ChatID:     testChatID,
			Wallet:     testWallet,
			VerifiedAt: now,
		}).Return(nil)

		ok, err := a.Verify(context.Background(), testChatID, testWallet)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reverification_keeps_premium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		premiumUntil := now.Add(3 * 24 * time.Hour)

		a, oracle, users, _ := newAccess(t, ctrl, now)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(10_000_000_000), nil)
		users.EXPECT().GetUser(testChatID).Return(dal.User{
			ChatID:       testChatID,
			Wallet:       testWallet,
			VerifiedAt:   now.Add(-24 * time.Hour),
			PremiumUntil: premiumUntil,
		}, true, nil)
		users.EXPECT().PutUser(dal.User{
			ChatID:       testChatID,
			Wallet:       testWallet,
			VerifiedAt:   now,
			PremiumUntil: premiumUntil,
		}).Return(nil)

		ok, err := a.Verify(context.Background(), testChatID, testWallet)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("oracle_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, _, _ := newAccess(t, ctrl, now)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(helius.Balances{}, errors.New("boom"))

		_, err := a.Verify(context.Background(), testChatID, testWallet)
		require.Error(t, err)
	})
}

func TestAccess_EnsureVerified(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	user := dal.User{ChatID: testChatID, Wallet: testWallet, VerifiedAt: now.Add(-24 * time.Hour)}

	t.Run("not_verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(dal.User{}, false, nil)

		ok, err := a.EnsureVerified(context.Background(), testChatID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("still_holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(10_000_000_000), nil)

		ok, err := a.EnsureVerified(context.Background(), testChatID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("dropped_below_minimum_revokes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(1_000_000), nil)
		users.EXPECT().DeleteUser(testChatID).Return(nil)

		ok, err := a.EnsureVerified(context.Background(), testChatID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAccess_RedeemBurn(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	user := dal.User{ChatID: testChatID, Wallet: testWallet, VerifiedAt: now.Add(-24 * time.Hour)}

	burnTx := helius.TransferEvent{
		Signature: "burn-sig",
		Type:      "BURN",
		TokenTransfers: []helius.TokenTransfer{
			{
				Mint:            "token-mint",
				TokenAmount:     100_000,
				FromUserAccount: testWallet,
				ToUserAccount:   "burn-addr",
			},
		},
	}

	t.Run("not_verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(dal.User{}, false, nil)

		ok, err := a.RedeemBurn(context.Background(), testChatID, "burn-sig")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lookup_failure_is_not_fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Transaction(gomock.Any(), "burn-sig").Return(helius.TransferEvent{}, errors.New("boom"))

		ok, err := a.RedeemBurn(context.Background(), testChatID, "burn-sig")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects_non_burn_transaction", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*helius.TokenTransfer)
		}{
			{"wrong_mint", func(tr *helius.TokenTransfer) { tr.Mint = "other-mint" }},
			{"wrong_sender", func(tr *helius.TokenTransfer) { tr.FromUserAccount = "someone-else" }},
			{"wrong_recipient", func(tr *helius.TokenTransfer) { tr.ToUserAccount = "not-the-burn-addr" }},
			{"amount_too_small", func(tr *helius.TokenTransfer) { tr.TokenAmount = 99_999 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				tx := burnTx
				tx.TokenTransfers = []helius.TokenTransfer{burnTx.TokenTransfers[0]}
				tt.mutate(&tx.TokenTransfers[0])

				a, oracle, users, _ := newAccess(t, ctrl, now)
				users.EXPECT().GetUser(testChatID).Return(user, true, nil)
				oracle.EXPECT().Transaction(gomock.Any(), "burn-sig").Return(tx, nil)

				ok, err := a.RedeemBurn(context.Background(), testChatID, "burn-sig")
				require.NoError(t, err)
				assert.False(t, ok)
			})
		}
	})

	t.Run("grants_premium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Transaction(gomock.Any(), "burn-sig").Return(burnTx, nil)

		granted := user
		granted.PremiumUntil = now.Add(testAccessConf.PremiumDuration)
		users.EXPECT().PutUser(granted).Return(nil)

		ok, err := a.RedeemBurn(context.Background(), testChatID, "burn-sig")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAccess_PremiumRemaining(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		user          dal.User
		found         bool
		wantRemaining time.Duration
		wantActive    bool
	}{
		{
			name: "no_user",
		},
		{
			name:  "no_grant",
			user:  dal.User{ChatID: testChatID, Wallet: testWallet},
			found: true,
		},
		{
			name:  "expired_grant",
			user:  dal.User{ChatID: testChatID, Wallet: testWallet, PremiumUntil: now.Add(-time.Hour)},
			found: true,
		},
		{
			name:          "active_grant",
			user:          dal.User{ChatID: testChatID, Wallet: testWallet, PremiumUntil: now.Add(48 * time.Hour)},
			found:         true,
			wantRemaining: 48 * time.Hour,
			wantActive:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, _, users, _ := newAccess(t, ctrl, now)
			users.EXPECT().GetUser(testChatID).Return(tt.user, tt.found, nil)

			remaining, active, err := a.PremiumRemaining(testChatID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, active)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestAccess_ToggleSubscription(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	t.Run("enables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, _, subscribers := newAccess(t, ctrl, now)
		subscribers.EXPECT().ExistsSubscriber(testChatID).Return(false, nil)
		subscribers.EXPECT().PutSubscriber(dal.Subscriber{ChatID: testChatID, CreatedAt: now}).Return(nil)

		enabled, err := a.ToggleSubscription(testChatID)
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("disables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, _, subscribers := newAccess(t, ctrl, now)
		subscribers.EXPECT().ExistsSubscriber(testChatID).Return(true, nil)
		subscribers.EXPECT().DeleteSubscriber(testChatID).Return(nil)

		enabled, err := a.ToggleSubscription(testChatID)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("flip_twice_restores_state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, _, subscribers := newAccess(t, ctrl, now)
		gomock.InOrder(
			subscribers.EXPECT().ExistsSubscriber(testChatID).Return(false, nil),
			subscribers.EXPECT().PutSubscriber(dal.Subscriber{ChatID: testChatID, CreatedAt: now}).Return(nil),
			subscribers.EXPECT().ExistsSubscriber(testChatID).Return(true, nil),
			subscribers.EXPECT().DeleteSubscriber(testChatID).Return(nil),
		)

		enabled, err := a.ToggleSubscription(testChatID)
		require.NoError(t, err)
		assert.True(t, enabled)

		enabled, err = a.ToggleSubscription(testChatID)
		require.NoError(t, err)
		assert.False(t, enabled)
	})
}

func TestAccess_TokenBalance(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	user := dal.User{ChatID: testChatID, Wallet: testWallet, VerifiedAt: now}

	t.Run("not_verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(dal.User{}, false, nil)

		_, found, err := a.TokenBalance(context.Background(), testChatID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("holds_platform_token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(holding(12_345_678_900), nil)

		balance, found, err := a.TokenBalance(context.Background(), testChatID)
		require.NoError(t, err)
		require.True(t, found)
		assert.InDelta(t, 12_345.6789, balance, 1e-9)
	})

	t.Run("holds_none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, oracle, users, _ := newAccess(t, ctrl, now)
		users.EXPECT().GetUser(testChatID).Return(user, true, nil)
		oracle.EXPECT().Balances(gomock.Any(), testWallet).Return(helius.Balances{}, nil)

		_, found, err := a.TokenBalance(context.Background(), testChatID)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
