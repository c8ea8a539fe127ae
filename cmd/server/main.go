package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/compumax/inventario/internal/config"
	"github.com/compumax/inventario/internal/database"
	"github.com/compumax/inventario/internal/handler"
	"github.com/compumax/inventario/internal/repository"
	"github.com/compumax/inventario/internal/router"
	"github.com/compumax/inventario/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, dashboard cache disabled")
	}

	var pub *service.Publisher
	if cfg.RabbitURL != "" {
		pub = service.NewPublisher(cfg.RabbitURL)
	}

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, repository.NewUserRepo(db)),
		Clientes:   handler.NewClientesHandler(db),
		Sucursales: handler.NewSucursalesHandler(db),
		Servicios:  handler.NewServiciosHandler(db),
		Radios:     handler.NewRadiosAntenasHandler(db, pub),
		Routers:    handler.NewRouterSwitchHandler(db, pub),
		Camaras:    handler.NewCamarasIPHandler(db, pub),
		Dashboard:  handler.NewDashboardHandler(repository.NewDashboardRepo(db)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORS()) // the React frontend is served from another origin
	router.RegisterRoutes(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("servidor escuchando en %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
