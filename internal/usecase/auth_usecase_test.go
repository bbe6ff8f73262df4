package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type AuthAdminUserRepoMock struct{ mock.Mock }

func (m *AuthAdminUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.AdminUser)
	return u, args.Error(1)
}

func (m *AuthAdminUserRepoMock) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.AdminUser)
	return u, args.Error(1)
}

func (m *AuthAdminUserRepoMock) Create(ctx context.Context, u *model.AdminUser) error {
	panic("not used in AuthUsecase tests")
}

func (m *AuthAdminUserRepoMock) Update(ctx context.Context, u *model.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTokenIssuer struct {
	token string
	ttl   time.Duration
}

func (f fakeTokenIssuer) Issue(adminUserID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return f.token, now.Add(f.ttl), nil
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(b)
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	aRepo := new(AuthAdminUserRepoMock)
	uc := usecase.NewAuthUsecase(
		aRepo,
		usecase.NewBcryptPasswordVerifier(),
		fakeTokenIssuer{token: "tok-123", ttl: 8 * time.Hour},
		fixedClock{now: now},
	)

	admin := &model.AdminUser{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "secret123"),
		Role:         model.RoleAdmin,
	}
	aRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	var updated *model.AdminUser
	aRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.AdminUser")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*model.AdminUser)
		}).
		Return(nil)

	out, err := uc.Login(ctx, usecase.LoginInput{Email: "admin@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "tok-123", out.Token.AccessToken)
	assert.Equal(t, int(8*time.Hour/time.Second), out.Token.ExpiresIn)

	//ハッシュは応答に含めない
	assert.Empty(t, out.Admin.PasswordHash)

	//最終ログイン時刻が記録される
	assert.NotNil(t, updated.LastLoginAt)
	assert.Equal(t, now, *updated.LastLoginAt)

	aRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	aRepo := new(AuthAdminUserRepoMock)
	uc := usecase.NewAuthUsecase(
		aRepo,
		usecase.NewBcryptPasswordVerifier(),
		fakeTokenIssuer{token: "tok", ttl: time.Hour},
		fixedClock{now: time.Now()},
	)

	aRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return((*model.AdminUser)(nil), repository.ErrAdminUserNotFound)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	aRepo := new(AuthAdminUserRepoMock)
	uc := usecase.NewAuthUsecase(
		aRepo,
		usecase.NewBcryptPasswordVerifier(),
		fakeTokenIssuer{token: "tok", ttl: time.Hour},
		fixedClock{now: time.Now()},
	)

	admin := &model.AdminUser{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: mustHash(t, "secret123"),
		Role:         model.RoleAdmin,
	}
	aRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	//存在しないemailと同じエラーにして列挙を防ぐ
	_, err := uc.Login(ctx, usecase.LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthUsecase_Me(t *testing.T) {
	ctx := context.Background()

	aRepo := new(AuthAdminUserRepoMock)
	uc := usecase.NewAuthUsecase(
		aRepo,
		usecase.NewBcryptPasswordVerifier(),
		fakeTokenIssuer{token: "tok", ttl: time.Hour},
		fixedClock{now: time.Now()},
	)

	aRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.AdminUser{ID: 1, Email: "admin@example.com", PasswordHash: "hash", Role: model.RoleAdmin}, nil)

	out, err := uc.Me(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", out.Email)
	assert.Empty(t, out.PasswordHash)
}

func TestAuthUsecase_Me_UnknownID(t *testing.T) {
	ctx := context.Background()

	aRepo := new(AuthAdminUserRepoMock)
	uc := usecase.NewAuthUsecase(
		aRepo,
		usecase.NewBcryptPasswordVerifier(),
		fakeTokenIssuer{token: "tok", ttl: time.Hour},
		fixedClock{now: time.Now()},
	)

	aRepo.On("FindByID", mock.Anything, int64(99)).
		Return((*model.AdminUser)(nil), repository.ErrAdminUserNotFound)

	_, err := uc.Me(ctx, 99)
	assertErrContains(t, err, "unauthorized")
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := usecase.NewBcryptPasswordHasher(bcrypt.MinCost)
	verifier := usecase.NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	assert.True(t, verifier.Verify("secret123", hashed))
	assert.False(t, verifier.Verify("secret124", hashed))
}
