package model

import "time"

// User mirrors the `usuarios` table.  The hash never leaves the repository
// layer; handlers expose PublicUser instead.
type User struct {
	ID             uint64    // usuarios.id
	Nombre         string    // usuarios.nombre (display name)
	Usuario        string    // usuarios.usuario (unique login name)
	ContrasenaHash string    // usuarios.contrasena_hash (bcrypt)
	Rol            string    // usuarios.rol ("admin" | "usuario")
	Activo         bool      // usuarios.activo
	FechaCreacion  time.Time // usuarios.fecha_creacion
}

// PublicUser is the view of a user returned by the login endpoint.
type PublicUser struct {
	ID      uint64 `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}
