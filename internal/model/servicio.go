package model

// Servicio records work performed at a branch on a given date.  Nullable
// columns map to pointers so JSON reproduces the NULLs stored in the
// database.  Fecha is a plain DATE kept as a string on the wire.
type Servicio struct {
	ID                   uint64  `json:"id"`
	IDSucursal           uint64  `json:"id_sucursal"`
	NombreCliente        string  `json:"nombre_cliente,omitempty"`
	NombreSucursal       string  `json:"nombre_sucursal,omitempty"`
	Nombre               string  `json:"nombre"`
	Descripcion          *string `json:"descripcion"`
	Fecha                *string `json:"fecha"`
	CreadoPorNombre      *string `json:"creado_por_nombre,omitempty"`
	ActualizadoPorNombre *string `json:"actualizado_por_nombre,omitempty"`
}
