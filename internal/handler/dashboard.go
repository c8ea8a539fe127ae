package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compumax/inventario/internal/model"
	"github.com/compumax/inventario/internal/repository"
)

// DashboardHandler serves the read-only aggregated equipment listing.
type DashboardHandler struct {
	Repo *repository.DashboardRepo
}

func NewDashboardHandler(r *repository.DashboardRepo) *DashboardHandler {
	return &DashboardHandler{Repo: r}
}

// List responds with every equipment row across the three hardware tables,
// tagged by kind and sorted by client, branch, kind, name.
func (h *DashboardHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.Repo.List(ctx)
	if err != nil {
		log.Printf("dashboard: %v", err)
		return c.String(http.StatusInternalServerError, "Error al obtener datos del dashboard")
	}
	if rows == nil {
		rows = []*model.EquipoDashboard{}
	}
	return c.JSON(http.StatusOK, rows)
}
