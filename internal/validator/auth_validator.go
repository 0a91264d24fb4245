package validator

import (
	"context"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

// パスワードの最低文字数
const minPasswordLength = 6

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック
	if username == "" || password == "" {
		return usecase.ErrValidation
	}

	if len(username) > 150 {
		return usecase.ErrValidation
	}

	// パスワード最低文字数
	if len(password) < minPasswordLength {
		return usecase.ErrValidation
	}

	// username重複チェック（DBが必要）
	u, err := v.users.FindByUsername(ctx, username)
	if err == nil && u != nil {
		return usecase.ErrUsernameAlreadyExists
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	// 必須チェック
	if strings.TrimSpace(username) == "" || password == "" {
		return usecase.ErrValidation
	}

	return nil
}
