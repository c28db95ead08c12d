package services

import (
	"context"
	"errors"
	"telemetryd/internal/models"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const selectUserSQL = `SELECT id, password FROM users WHERE email = $1`

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
}

type AuthService struct {
	pool DBPool
}

func NewAuthService(pool DBPool) AuthServiceInterface {
	return &AuthService{pool: pool}
}

// Login performs a one-shot credential check. Unknown users and wrong
// passwords are business outcomes, not errors; the error return is
// reserved for storage failures.
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var user models.User
	err := as.pool.QueryRow(ctx, selectUserSQL, email).Scan(&user.ID, &user.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.LoginResult{Success: false, Message: models.MsgUserNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return &models.LoginResult{Success: false, Message: models.MsgIncorrectPass}, nil
	}

	return &models.LoginResult{
		Success: true,
		Message: models.MsgLoginSuccessful,
		UserID:  user.ID,
	}, nil
}
