package main

import (
	"context"
	"errors"
	"time"

	"app/internal/cart"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/logger"
	"app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 8 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(adminUserID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  adminUserID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// seedAdmin はADMIN_EMAIL/ADMIN_PASSWORDが設定されていれば初期管理者を作る。
func seedAdmin(ctx context.Context, cfg config.Config, adminRepo repository.AdminUserRepository, hasher usecase.PasswordHasher, log *logger.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := adminRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	if err := adminRepo.Create(ctx, &model.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}

	log.Info("seeded initial admin user", "email", cfg.AdminEmail)
	return nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", "error", err.Error())
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.AdminUser{},
	); err != nil {
		log.Fatal("migrate failed", "error", err.Error())
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg.JWTSecret)

	//初期管理者
	if err := seedAdmin(context.Background(), cfg, adminRepo, hasher, log); err != nil {
		log.Fatal("admin seed failed", "error", err.Error())
	}

	//画像保存先
	imageStore, err := storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("storage init failed", "error", err.Error())
	}

	//セッションカート
	cartStore := cart.NewStore()

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, log)
	cartUC := usecase.NewCartUsecase(cartStore, catalogUC)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, orderRepo, orderItemRepo, cartStore, log)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo, log)
	authUC := usecase.NewAuthUsecase(adminRepo, verifier, issuer, clock)

	//Handler生成とルート登録
	e := server.New(cfg, imageStore.Dir())

	productH := handler.NewProductHandler(catalogUC)
	productH.RegisterRoutes(e)

	cartH := handler.NewCartHandler(cartUC, cartStore)
	cartH.RegisterRoutes(e)

	checkoutH := handler.NewCheckoutHandler(checkoutUC, cartH)
	checkoutH.RegisterRoutes(e)

	authH := handler.NewAdminAuthHandler(authUC)
	authH.RegisterRoutes(e, cfg)

	adminProductH := handler.NewAdminProductHandler(adminProductUC)
	adminProductH.RegisterRoutes(e, cfg)

	adminOrderH := handler.NewAdminOrderHandler(adminOrderUC)
	adminOrderH.RegisterRoutes(e, cfg)

	uploadH := handler.NewUploadHandler(imageStore)
	uploadH.RegisterRoutes(e, cfg)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("server starting", "addr", addr)
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", "error", err.Error())
	}
}
