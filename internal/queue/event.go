// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue name for inventory change notifications.
const CambiosQueue = "inventario.cambios"

// Actions carried in CambioInventarioEvent.Accion.
const (
	AccionCreado     = "creado"
	AccionModificado = "modificado"
	AccionEliminado  = "eliminado"
)

// CambioInventarioEvent is published when an equipment record is created,
// replaced or deleted.  Downstream consumers (notifications, reporting) get
// enough to react without querying the primary database.
type CambioInventarioEvent struct {
	Tipo    string `json:"tipo"`    // RADIO/ANTENA | ROUTER/SWITCH | CAMARA IP
	Accion  string `json:"accion"`  // creado | modificado | eliminado
	ID      uint64 `json:"id"`      // primary key of the affected row
	Usuario string `json:"usuario"` // login name of the acting user, may be empty
	Fecha   string `json:"fecha"`   // RFC 3339 UTC timestamp of the change
}
