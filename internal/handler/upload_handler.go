package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/infra/storage"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// UploadHandler は商品画像のアップロード。保存先はローカルディスク。
type UploadHandler struct {
	storage *storage.LocalStorage
}

// DI
func NewUploadHandler(s *storage.LocalStorage) *UploadHandler {
	return &UploadHandler{storage: s}
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("/uploads", h.upload)
}

type UploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

func (h *UploadHandler) upload(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}

	name, err := h.storage.Save(fh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Path: name,
		URL:  h.storage.PublicURL(name),
	})
}
