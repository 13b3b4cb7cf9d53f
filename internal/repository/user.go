package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/loyalbox/loyalbox/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound       = errors.New("USER_NOT_FOUND")
	ErrUsernameTaken      = errors.New("USERNAME_TAKEN")
	ErrInsufficientPoints = errors.New("INSUFFICIENT_POINTS")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	LockByID(ctx context.Context, id string) (model.User, error)
	AdjustPoints(ctx context.Context, id string, delta int64) error
	AnyExists(ctx context.Context) (bool, error)
	SetAdmin(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.User, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) Create(ctx context.Context, u *model.User) error {
	db := GetTx(ctx, r.db)

	err := db.Create(u).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUsernameTaken
	}

	return err
}

func (r *user) FindByID(ctx context.Context, id string) (model.User, error) {
	db := GetTx(ctx, r.db)

	var u model.User
	if err := db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) FindByUsername(ctx context.Context, username string) (model.User, error) {
	db := GetTx(ctx, r.db)

	var u model.User
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// LockByID reads the user row under SELECT ... FOR UPDATE. Only meaningful
// inside TxManager.WithTx; concurrent mutations for the same user serialize
// on this row lock while distinct users never contend.
func (r *user) LockByID(ctx context.Context, id string) (model.User, error) {
	db := GetTx(ctx, r.db)

	var u model.User
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// AdjustPoints applies a signed delta to the balance. The predicate keeps the
// balance from going negative even without the row lock held; a matched but
// unapplied update surfaces as ErrInsufficientPoints. Callers must hold the
// LockByID lock so the existence check and the delta stay one atomic step.
func (r *user) AdjustPoints(ctx context.Context, id string, delta int64) error {
	if delta == 0 {
		// MySQL reports zero affected rows for a no-op update; nothing to do.
		return nil
	}

	db := GetTx(ctx, r.db)

	res := db.Model(&model.User{}).
		Where("id = ? AND points + ? >= 0", id, delta).
		Update("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientPoints
	}
	return nil
}

// AnyExists reports whether any user row exists, locking what it reads. On an
// empty InnoDB table the FOR UPDATE read takes the supremum next-key lock, so
// two concurrent first registrations cannot both claim the admin flag.
func (r *user) AnyExists(ctx context.Context) (bool, error) {
	db := GetTx(ctx, r.db)

	var ids []string
	err := db.Model(&model.User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *user) SetAdmin(ctx context.Context, id string) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.User{}).
		Where("id = ?", id).
		Update("is_admin", true).Error
}

func (r *user) List(ctx context.Context) ([]model.User, error) {
	db := GetTx(ctx, r.db)

	var users []model.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
