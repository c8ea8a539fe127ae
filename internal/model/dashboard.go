package model

// EquipoDashboard is one row of the aggregated equipment listing: a tagged
// union over the three hardware tables with a common field subset.  Tipo is
// the discriminator; fields a kind lacks (router/switch has no ip_cliente)
// come back as NULL.
type EquipoDashboard struct {
	ID             uint64  `json:"id"`
	Tipo           string  `json:"tipo"`
	Nombre         *string `json:"nombre"`
	Modelo         *string `json:"modelo"`
	MAC            *string `json:"mac"`
	IPCliente      *string `json:"ip_cliente"`
	NombreSucursal string  `json:"nombre_sucursal"`
	NombreCliente  string  `json:"nombre_cliente"`
}
