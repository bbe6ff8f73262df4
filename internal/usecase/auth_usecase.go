package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(adminUserID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// パスワードをハッシュ化する約束（管理者seed用）
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type LoginOutput struct {
	Admin model.AdminUser `json:"admin"`
	Token JwtAccessToken  `json:"token"`
}

// AuthUsecase は管理画面のログイン。storefront側に会員機能は無い。
type AuthUsecase struct {
	adminRepo repository.AdminUserRepository
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     Clock
}

func NewAuthUsecase(
	adminRepo repository.AdminUserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		adminRepo: adminRepo,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

// Login はログイン処理を実行する
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailで管理者取得
	admin, err := u.adminRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, admin.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	//AccessToken発行
	now := u.clock.Now()
	accessToken, accessExp, err := u.issuer.Issue(admin.ID, admin.Role, now)
	if err != nil {
		return out, err
	}

	//最終ログイン時刻更新
	admin.LastLoginAt = &now
	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return out, err
	}

	//出力（password hashは返さない）
	safeAdmin := *admin
	safeAdmin.PasswordHash = ""

	out.Admin = safeAdmin
	out.Token = JwtAccessToken{
		AccessToken: accessToken,
		ExpiresIn:   int(accessExp.Sub(now).Seconds()),
	}
	return out, nil
}

// Me はトークンのsubで管理者本人を引く。
func (u *AuthUsecase) Me(ctx context.Context, adminUserID int64) (model.AdminUser, error) {
	admin, err := u.adminRepo.FindByID(ctx, adminUserID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return model.AdminUser{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return model.AdminUser{}, err
	}

	safe := *admin
	safe.PasswordHash = ""
	return safe, nil
}

// bcrypt実装

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
