package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//400 username重複
	ErrUsernameAlreadyExists = errors.New("username already exists")
	//401 認証失敗
	ErrInvalidCredentials = errors.New("invalid credentials")
	//401 refresh tokenが不正
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	//500
	ErrInternal = errors.New("internal error")
)

// accesstokenの有効期限
const accessTokenTTL = 15 * time.Minute

// refreshtokenの有効期限
const refreshTokenTTL = 7 * 24 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, username string, password string) error
	ValidateLogin(ctx context.Context, username string, password string) error
}

type TokenPairDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshedTokenDTO struct {
	Access string `json:"access"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repository.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repository.UserRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, username string, password string) error {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, username, password); err != nil {
		return err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(pwHash),
	}

	//保存（unique制約違反はvalidatorをすり抜けた競合）
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrUsernameAlreadyExists
		}
		return ErrInternal
	}

	return nil
}

// IssueTokenPairはusername/passwordを照合してaccess/refreshのJWTペアを返す。
func (u *AuthUsecase) IssueTokenPair(ctx context.Context, username string, password string) (*TokenPairDTO, error) {
	if err := u.validator.ValidateLogin(ctx, username, password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	//last_login更新
	now := time.Now()
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	access, err := u.signToken(user, "access", accessTokenTTL)
	if err != nil {
		return nil, ErrInternal
	}
	refresh, err := u.signToken(user, "refresh", refreshTokenTTL)
	if err != nil {
		return nil, ErrInternal
	}

	return &TokenPairDTO{
		Access:  access,
		Refresh: refresh,
	}, nil
}

// Refreshはrefresh tokenを検証してaccess tokenを再発行する。
// usernameクレームは発行時点のユーザーを読み直して入れる。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*RefreshedTokenDTO, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidRefreshToken
	}

	//access tokenをrefreshとして使わせない
	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, ErrInvalidRefreshToken
	}

	//ユーザーを読み直す（usernameクレームを最新にするため）
	user, err := u.users.FindByID(ctx, int64(sub))
	if err != nil || user == nil {
		return nil, ErrInvalidRefreshToken
	}

	access, err := u.signToken(user, "access", accessTokenTTL)
	if err != nil {
		return nil, ErrInternal
	}

	return &RefreshedTokenDTO{Access: access}, nil
}

// jwt発行（標準クレーム + usernameカスタムクレーム）
func (u *AuthUsecase) signToken(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":        user.ID,
		"username":   user.Username, // 発行時点の表示名
		"token_type": tokenType,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}
