package handler

// inventario.go binds the generic CrudHandler to each of the six inventory
// entities: repository schema plus the per-entity messages.  The three
// hardware types additionally publish change events when a publisher is
// configured.

import (
	"database/sql"

	"github.com/compumax/inventario/internal/model"
	"github.com/compumax/inventario/internal/repository"
	"github.com/compumax/inventario/internal/service"
)

func NewClientesHandler(db *sql.DB) *CrudHandler[model.Cliente] {
	return &CrudHandler[model.Cliente]{
		Repo: repository.NewRepo(db, repository.ClienteSchema),
		Text: CrudText{
			FetchAllErr: "Error al obtener clientes",
			FetchErr:    "Error al obtener cliente",
			NotFound:    "Cliente no encontrado",
			Created:     "Cliente creado correctamente",
			CreateErr:   "Error al crear cliente",
			Updated:     "Cliente actualizado correctamente",
			UpdateErr:   "Error al actualizar cliente",
			Deleted:     "Cliente eliminado correctamente",
			DeleteErr:   "Error al eliminar cliente",
		},
	}
}

func NewSucursalesHandler(db *sql.DB) *CrudHandler[model.Sucursal] {
	return &CrudHandler[model.Sucursal]{
		Repo: repository.NewRepo(db, repository.SucursalSchema),
		Text: CrudText{
			FetchAllErr: "Error al obtener sucursales",
			FetchErr:    "Error al obtener sucursal",
			NotFound:    "Sucursal no encontrada",
			Created:     "Sucursal creada correctamente",
			CreateErr:   "Error al crear sucursal",
			Updated:     "Sucursal actualizada correctamente",
			UpdateErr:   "Error al actualizar sucursal",
			Deleted:     "Sucursal eliminada correctamente",
			DeleteErr:   "Error al eliminar sucursal",
		},
	}
}

func NewServiciosHandler(db *sql.DB) *CrudHandler[model.Servicio] {
	return &CrudHandler[model.Servicio]{
		Repo: repository.NewRepo(db, repository.ServicioSchema),
		Text: CrudText{
			FetchAllErr: "Error al obtener servicios",
			FetchErr:    "Error al obtener servicio",
			NotFound:    "Servicio no encontrado",
			Created:     "Servicio creado correctamente",
			CreateErr:   "Error al crear servicio",
			Updated:     "Servicio actualizado correctamente",
			UpdateErr:   "Error al actualizar servicio",
			Deleted:     "Servicio eliminado correctamente",
			DeleteErr:   "Error al eliminar servicio",
		},
	}
}

func NewRadiosAntenasHandler(db *sql.DB, pub *service.Publisher) *CrudHandler[model.RadioAntena] {
	return &CrudHandler[model.RadioAntena]{
		Repo:   repository.NewRepo(db, repository.RadioAntenaSchema),
		Events: pub,
		Kind:   "RADIO/ANTENA",
		Text: CrudText{
			FetchAllErr: "Error al obtener radios/antenas",
			FetchErr:    "Error al obtener radio/antena",
			NotFound:    "Radio/antena no encontrado",
			Created:     "Radio/antena creado correctamente",
			CreateErr:   "Error al crear radio/antena",
			Updated:     "Radio/antena actualizado correctamente",
			UpdateErr:   "Error al actualizar radio/antena",
			Deleted:     "Radio/antena eliminado correctamente",
			DeleteErr:   "Error al eliminar radio/antena",
		},
	}
}

func NewRouterSwitchHandler(db *sql.DB, pub *service.Publisher) *CrudHandler[model.RouterSwitch] {
	return &CrudHandler[model.RouterSwitch]{
		Repo:   repository.NewRepo(db, repository.RouterSwitchSchema),
		Events: pub,
		Kind:   "ROUTER/SWITCH",
		Text: CrudText{
			FetchAllErr: "Error al obtener router/switch",
			FetchErr:    "Error al obtener router/switch",
			NotFound:    "Router/switch no encontrado",
			Created:     "Router/switch creado correctamente",
			CreateErr:   "Error al crear router/switch",
			Updated:     "Router/switch actualizado correctamente",
			UpdateErr:   "Error al actualizar router/switch",
			Deleted:     "Router/switch eliminado correctamente",
			DeleteErr:   "Error al eliminar router/switch",
		},
	}
}

func NewCamarasIPHandler(db *sql.DB, pub *service.Publisher) *CrudHandler[model.CamaraIP] {
	return &CrudHandler[model.CamaraIP]{
		Repo:   repository.NewRepo(db, repository.CamaraIPSchema),
		Events: pub,
		Kind:   "CAMARA IP",
		Text: CrudText{
			FetchAllErr: "Error al obtener cámaras",
			FetchErr:    "Error al obtener cámara",
			NotFound:    "Cámara no encontrada",
			Created:     "Cámara creada correctamente",
			CreateErr:   "Error al crear cámara",
			Updated:     "Cámara actualizada correctamente",
			UpdateErr:   "Error al actualizar cámara",
			Deleted:     "Cámara eliminada correctamente",
			DeleteErr:   "Error al eliminar cámara",
		},
	}
}
