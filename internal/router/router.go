package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/compumax/inventario/internal/config"
	"github.com/compumax/inventario/internal/handler"
	"github.com/compumax/inventario/internal/middleware"
	"github.com/compumax/inventario/internal/model"
)

// Handlers groups everything RegisterRoutes mounts.  The six CRUD handlers
// are concrete instantiations of the same generic handler.
type Handlers struct {
	Auth       *handler.AuthHandler
	Clientes   *handler.CrudHandler[model.Cliente]
	Sucursales *handler.CrudHandler[model.Sucursal]
	Servicios  *handler.CrudHandler[model.Servicio]
	Radios     *handler.CrudHandler[model.RadioAntena]
	Routers    *handler.CrudHandler[model.RouterSwitch]
	Camaras    *handler.CrudHandler[model.CamaraIP]
	Dashboard  *handler.DashboardHandler
}

// RegisterRoutes wires all endpoints.  /healthz and /api/auth/* are open;
// everything else under /api sits behind the JWT gate, so no repository is
// ever reached without verified claims.  The dashboard additionally gets the
// Redis response cache when a client is available.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	a := e.Group("/api/auth")
	a.POST("/register", h.Auth.Register)
	a.POST("/login", h.Auth.Login)

	api := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	crud(api, "/clientes", h.Clientes)
	crud(api, "/sucursales", h.Sucursales)
	crud(api, "/servicios", h.Servicios)
	crud(api, "/radios_antenas", h.Radios)
	crud(api, "/routerswitch", h.Routers)
	crud(api, "/camarasip", h.Camaras)
	api.GET("/dashboard", h.Dashboard.List, middleware.ResponseCache(rdb, cfg.CacheTTL))
}

// crud mounts the five verbs of the entity contract under one prefix.
func crud[T any](g *echo.Group, prefix string, h *handler.CrudHandler[T]) {
	g.GET(prefix, h.List)
	g.GET(prefix+"/:id", h.Get)
	g.POST(prefix, h.Create)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}
