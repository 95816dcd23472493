package server

import (
	"notesapi/internal/config"
	"notesapi/internal/database"
	"notesapi/internal/service/notes"
	"notesapi/internal/service/photos"
	"notesapi/internal/service/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
)

type FiberServer struct {
	*fiber.App

	db     database.Service
	users  users.Service
	notes  notes.Service
	photos photos.Service
}

func New(cfg config.ServerConfig, db database.Service, usersServ users.Service, notesServ notes.Service, photosServ photos.Service) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "notesapi",
			AppName:      "notesapi",
		}),
		db:     db,
		users:  usersServ,
		notes:  notesServ,
		photos: photosServ,
	}
	server.App.Use(favicon.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New())
	server.App.Use(pprof.New(pprof.Config{
		Next: nil,
	}))
	return server
}
