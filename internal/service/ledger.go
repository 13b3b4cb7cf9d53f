package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/loyalbox/loyalbox/internal/cache"
	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/metrics"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"go.uber.org/zap"
)

// One point per ten currency units spent, truncated toward zero.
const currencyPerPoint = 10

var (
	ErrInvalidPurchase    = errors.New("item name and positive price required")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// LedgerService mutates point balances and appends the matching immutable
// transaction record as one atomic unit. It is the only component allowed to
// touch a user's balance.
type LedgerService interface {
	Earn(ctx context.Context, cmd EarnCommand) (LedgerResult, error)
	Redeem(ctx context.Context, cmd RedeemCommand) (LedgerResult, error)
	Balance(ctx context.Context, userID string) (int64, error)
	History(ctx context.Context, userID string) ([]model.Transaction, error)
	AllTransactions(ctx context.Context) ([]model.LedgerEntry, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type ledgerService struct {
	txManager    repository.TxManager
	users        repository.UserRepository
	rewards      repository.RewardRepository
	transactions repository.TransactionRepository
	cache        cache.BalanceCache
	log          *zap.Logger
	metrics      *metrics.Metrics
}

func NewLedgerService(txManager repository.TxManager, users repository.UserRepository,
	rewards repository.RewardRepository, transactions repository.TransactionRepository,
	balanceCache cache.BalanceCache, log *zap.Logger, metrics *metrics.Metrics) LedgerService {
	return &ledgerService{
		txManager:    txManager,
		users:        users,
		rewards:      rewards,
		transactions: transactions,
		cache:        balanceCache,
		log:          log,
		metrics:      metrics,
	}
}

// Earn credits floor(price/10) points for a purchase. A purchase below ten
// currency units still succeeds and still writes a zero-point record, so the
// trail covers every purchase.
func (s *ledgerService) Earn(ctx context.Context, cmd EarnCommand) (LedgerResult, error) {
	if cmd.ItemName == "" || cmd.Price <= 0 {
		return LedgerResult{}, NewServiceError(constants.ErrCodeValidation, ErrInvalidPurchase)
	}

	earned := int64(cmd.Price / currencyPerPoint)

	record := model.Transaction{
		UserID:      cmd.UserID,
		Type:        model.TxTypeEarn,
		Points:      earned,
		Description: fmt.Sprintf("Bought %s for $%s", cmd.ItemName, formatPrice(cmd.Price)),
		CreatedAt:   time.Now(),
	}

	var balance int64
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.users.LockByID(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.users.AdjustPoints(ctx, cmd.UserID, earned); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.transactions.Create(ctx, &record); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		balance = user.Points + earned
		return nil
	})

	if err != nil {
		s.log.Error("Failed to credit purchase points",
			zap.String("user_id", cmd.UserID),
			zap.String("item", cmd.ItemName),
			zap.Error(err),
		)
		s.recordError(model.TxTypeEarn, err)
		return LedgerResult{}, err
	}

	s.invalidateBalance(ctx, cmd.UserID)
	s.metrics.RecordTransaction(string(model.TxTypeEarn), earned)
	s.metrics.UpdateUserPoints(cmd.UserID, balance)

	s.log.Info("Points earned",
		zap.String("user_id", cmd.UserID),
		zap.String("item", cmd.ItemName),
		zap.Int64("points_earned", earned),
		zap.Int64("balance", balance),
	)

	return LedgerResult{Points: balance, TransactionID: record.TransactionID, TransactionTime: record.CreatedAt}, nil
}

// Redeem exchanges points for a reward. The balance check and the decrement
// are one atomic step under the user row lock, so concurrent redemptions for
// the same user can never drive the balance negative.
func (s *ledgerService) Redeem(ctx context.Context, cmd RedeemCommand) (LedgerResult, error) {
	reward, err := s.rewards.FindByID(ctx, cmd.RewardID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return LedgerResult{}, NewServiceError(constants.ErrCodeRewardNotFound, err)
		}
		return LedgerResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	record := model.Transaction{
		UserID:      cmd.UserID,
		Type:        model.TxTypeRedeem,
		Points:      reward.PointsRequired,
		Description: fmt.Sprintf("Redeemed %s", reward.Name),
		CreatedAt:   time.Now(),
	}

	var balance int64
	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.users.LockByID(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if user.Points < reward.PointsRequired {
			return NewServiceError(constants.ErrCodeInsufficientPoints, ErrInsufficientPoints)
		}

		if err := s.users.AdjustPoints(ctx, cmd.UserID, -reward.PointsRequired); err != nil {
			if errors.Is(err, repository.ErrInsufficientPoints) {
				return NewServiceError(constants.ErrCodeInsufficientPoints, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.transactions.Create(ctx, &record); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		balance = user.Points - reward.PointsRequired
		return nil
	})

	if err != nil {
		s.log.Warn("Redemption rejected",
			zap.String("user_id", cmd.UserID),
			zap.String("reward_id", cmd.RewardID),
			zap.Error(err),
		)
		s.recordError(model.TxTypeRedeem, err)
		return LedgerResult{}, err
	}

	s.invalidateBalance(ctx, cmd.UserID)
	s.metrics.RecordTransaction(string(model.TxTypeRedeem), reward.PointsRequired)
	s.metrics.UpdateUserPoints(cmd.UserID, balance)

	s.log.Info("Reward redeemed",
		zap.String("user_id", cmd.UserID),
		zap.String("reward", reward.Name),
		zap.Int64("points_spent", reward.PointsRequired),
		zap.Int64("balance", balance),
	)

	return LedgerResult{Points: balance, TransactionID: record.TransactionID, TransactionTime: record.CreatedAt}, nil
}

// Balance serves the current point balance, read-through the cache when one
// is configured.
func (s *ledgerService) Balance(ctx context.Context, userID string) (int64, error) {
	if s.cache != nil {
		if points, err := s.cache.GetPoints(ctx, userID); err == nil {
			return points, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if s.cache != nil {
		if err := s.cache.SetPoints(ctx, userID, user.Points); err != nil {
			s.log.Error("Failed to prime balance cache", zap.Error(err))
		}
	}

	return user.Points, nil
}

func (s *ledgerService) History(ctx context.Context, userID string) ([]model.Transaction, error) {
	txs, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return txs, nil
}

func (s *ledgerService) AllTransactions(ctx context.Context) ([]model.LedgerEntry, error) {
	entries, err := s.transactions.ListAll(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return entries, nil
}

func (s *ledgerService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return users, nil
}

func (s *ledgerService) invalidateBalance(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Error("Failed to invalidate balance cache",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *ledgerService) recordError(txType model.TxType, err error) {
	var serviceErr Error
	code := constants.ErrCodeInternalError
	if errors.As(err, &serviceErr) {
		code = serviceErr.Code
	}
	s.metrics.RecordTransactionError(string(txType), code)
}

// formatPrice renders the price the way it arrived on the wire: no trailing
// zeros, no exponent.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
