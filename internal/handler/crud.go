package handler

// crud.go implements the HTTP side of the generic entity contract.  One
// CrudHandler serves the five verbs for any entity; only the repository, the
// Spanish message set and (for hardware) the event kind vary per instance.

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/compumax/inventario/internal/middleware"
	"github.com/compumax/inventario/internal/queue"
	"github.com/compumax/inventario/internal/repository"
	"github.com/compumax/inventario/internal/service"
)

// CrudText holds the user-facing messages for one entity.  Confirmations and
// not-found texts are plain text, matching what the frontend expects.
type CrudText struct {
	FetchAllErr string
	FetchErr    string
	NotFound    string
	Created     string
	CreateErr   string
	Updated     string
	UpdateErr   string
	Deleted     string
	DeleteErr   string
}

// CrudHandler serves List/Get/Create/Update/Delete for one entity.  Events
// and Kind are optional: when both are set, successful writes publish an
// inventory change event.
type CrudHandler[T any] struct {
	Repo   *repository.Repo[T]
	Text   CrudText
	Events *service.Publisher
	Kind   string
}

// List responds with all rows, join-enriched.  An empty table yields [].
func (h *CrudHandler[T]) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Repo.List(ctx)
	if err != nil {
		log.Printf("list %s: %v", c.Path(), err)
		return c.String(http.StatusInternalServerError, h.Text.FetchAllErr)
	}
	if items == nil {
		items = []*T{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get responds with a single row by id.
func (h *CrudHandler[T]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	item, err := h.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusNotFound, h.Text.NotFound)
		}
		log.Printf("get %s: %v", c.Path(), err)
		return c.String(http.StatusInternalServerError, h.Text.FetchErr)
	}
	return c.JSON(http.StatusOK, item)
}

// Create inserts a row, stamping the acting user when the entity is audited.
func (h *CrudHandler[T]) Create(c echo.Context) error {
	e := new(T)
	if err := c.Bind(e); err != nil {
		return c.String(http.StatusBadRequest, "Cuerpo de solicitud inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	id, err := h.Repo.Create(ctx, e, actorID(c))
	if err != nil {
		log.Printf("create %s: %v", c.Path(), err)
		return c.String(http.StatusInternalServerError, h.Text.CreateErr)
	}
	h.publish(c, queue.AccionCreado, id)
	return c.String(http.StatusOK, h.Text.Created)
}

// Update replaces all mutable fields of a row.
func (h *CrudHandler[T]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}
	e := new(T)
	if err := c.Bind(e); err != nil {
		return c.String(http.StatusBadRequest, "Cuerpo de solicitud inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Repo.Update(ctx, id, e, actorID(c)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusNotFound, h.Text.NotFound)
		}
		log.Printf("update %s: %v", c.Path(), err)
		return c.String(http.StatusInternalServerError, h.Text.UpdateErr)
	}
	h.publish(c, queue.AccionModificado, id)
	return c.String(http.StatusOK, h.Text.Updated)
}

// Delete removes a row by id.  Hard delete; repeating it reports not found.
func (h *CrudHandler[T]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusNotFound, h.Text.NotFound)
		}
		log.Printf("delete %s: %v", c.Path(), err)
		return c.String(http.StatusInternalServerError, h.Text.DeleteErr)
	}
	h.publish(c, queue.AccionEliminado, id)
	return c.String(http.StatusOK, h.Text.Deleted)
}

// publish emits a change event when this handler is configured for it.
// Best effort: the publisher already logs failures.
func (h *CrudHandler[T]) publish(c echo.Context, accion string, id uint64) {
	if h.Events == nil || h.Kind == "" {
		return
	}
	usuario, _ := c.Get(middleware.CtxUsuario).(string)
	_ = h.Events.PublishCambio(c.Request().Context(), queue.CambioInventarioEvent{
		Tipo:    h.Kind,
		Accion:  accion,
		ID:      id,
		Usuario: usuario,
		Fecha:   time.Now().UTC().Format(time.RFC3339),
	})
}

// actorID returns the authenticated user's id for audit stamping, or nil
// when the gate attached no claims.  Repositories store nil as NULL.
func actorID(c echo.Context) *uint64 {
	if v, ok := c.Get(middleware.CtxUserID).(uint64); ok {
		return &v
	}
	return nil
}

func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
