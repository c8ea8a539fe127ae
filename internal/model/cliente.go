package model

// Cliente is the root of the ownership hierarchy: every Sucursal belongs to
// exactly one Cliente.
type Cliente struct {
	ID     uint64 `json:"id"`
	Nombre string `json:"nombre"`
}

// Sucursal is a branch location of a client.  NombreCliente is join
// enrichment populated on reads only; it is never written back.
type Sucursal struct {
	ID            uint64 `json:"id"`
	IDCliente     uint64 `json:"id_cliente"`
	NombreCliente string `json:"nombre_cliente,omitempty"`
	Nombre        string `json:"nombre"`
}
