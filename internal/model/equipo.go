package model

import "time"

// The three hardware record types share most of their shape: branch
// ownership, identification fields, admin credentials and audit stamps.
// They differ only in kind-specific columns (radio SSID data, camera
// location, the client-facing IP).  Nullable varchar columns are pointers so
// that omitted fields round-trip as NULL.

// RadioAntena mirrors the `radios_antenas` table.
type RadioAntena struct {
	ID                   uint64     `json:"id"`
	IDSucursal           uint64     `json:"id_sucursal"`
	IDCliente            uint64     `json:"id_cliente,omitempty"`
	Nombre               *string    `json:"nombre"`
	Marca                *string    `json:"marca"`
	Modelo               *string    `json:"modelo"`
	MAC                  *string    `json:"mac"`
	SN                   *string    `json:"sn"`
	Usuario              *string    `json:"usuario"`
	Contrasena           *string    `json:"contrasena"`
	Tipo                 *string    `json:"tipo"`
	SSID                 *string    `json:"ssid"`
	SSIDPsw              *string    `json:"ssid_psw"`
	IPCliente            *string    `json:"ip_cliente"`
	NombreSucursal       string     `json:"nombre_sucursal,omitempty"`
	NombreCliente        string     `json:"nombre_cliente,omitempty"`
	CreadoPorNombre      *string    `json:"creado_por_nombre,omitempty"`
	ActualizadoPorNombre *string    `json:"actualizado_por_nombre,omitempty"`
	FechaCreacion        *time.Time `json:"fecha_creacion,omitempty"`
	FechaActualizacion   *time.Time `json:"fecha_actualizacion,omitempty"`
}

// RouterSwitch mirrors the `router_switch` table.  It carries no
// client-facing IP.
type RouterSwitch struct {
	ID                   uint64     `json:"id"`
	IDSucursal           uint64     `json:"id_sucursal"`
	IDCliente            uint64     `json:"id_cliente,omitempty"`
	NombreSucursal       string     `json:"nombre_sucursal,omitempty"`
	NombreCliente        string     `json:"nombre_cliente,omitempty"`
	Nombre               *string    `json:"nombre"`
	Marca                *string    `json:"marca"`
	Modelo               *string    `json:"modelo"`
	MAC                  *string    `json:"mac"`
	SN                   *string    `json:"sn"`
	Usuario              *string    `json:"usuario"`
	Contrasena           *string    `json:"contrasena"`
	CreadoPorNombre      *string    `json:"creado_por_nombre,omitempty"`
	ActualizadoPorNombre *string    `json:"actualizado_por_nombre,omitempty"`
	FechaCreacion        *time.Time `json:"fecha_creacion,omitempty"`
	FechaActualizacion   *time.Time `json:"fecha_actualizacion,omitempty"`
}

// CamaraIP mirrors the `camaras_ip` table.
type CamaraIP struct {
	ID                   uint64     `json:"id"`
	IDSucursal           uint64     `json:"id_sucursal"`
	IDCliente            uint64     `json:"id_cliente,omitempty"`
	Nombre               *string    `json:"nombre"`
	Modelo               *string    `json:"modelo"`
	MAC                  *string    `json:"mac"`
	SN                   *string    `json:"sn"`
	Usuario              *string    `json:"usuario"`
	Contrasena           *string    `json:"contrasena"`
	Ubicacion            *string    `json:"ubicacion"`
	Zona                 *string    `json:"zona"`
	IPCliente            *string    `json:"ip_cliente"`
	NombreSucursal       string     `json:"nombre_sucursal,omitempty"`
	NombreCliente        string     `json:"nombre_cliente,omitempty"`
	CreadoPorNombre      *string    `json:"creado_por_nombre,omitempty"`
	ActualizadoPorNombre *string    `json:"actualizado_por_nombre,omitempty"`
	FechaCreacion        *time.Time `json:"fecha_creacion,omitempty"`
	FechaActualizacion   *time.Time `json:"fecha_actualizacion,omitempty"`
}
