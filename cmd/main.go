package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/michalswider/electronic-gradebook/config"
	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/handlers"
	"github.com/michalswider/electronic-gradebook/routes"
)

func main() {
	cfg := config.Load()

	database.Connect(cfg)
	database.SeedAdmin()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = errs.HTTPErrorHandler

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
