package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New は共通ミドルウェアを載せたechoを作る。ルートは各handlerが登録する。
func New(cfg config.Config, uploadDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	//アップロード画像の配信
	e.Static("/uploads", uploadDir)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
