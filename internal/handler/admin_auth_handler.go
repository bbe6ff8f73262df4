package handler

import (
	"errors"
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminAuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAdminAuthHandler(uc *usecase.AuthUsecase) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc}
}

func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/admin/login", h.login)

	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())
	admin.GET("/me", h.me)
}

// /admin/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password required"})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// ログイン中の管理者を返す（tokenのsubで引く）
func (h *AdminAuthHandler) me(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	admin, err := h.uc.Me(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, admin)
}
