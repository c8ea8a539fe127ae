// Package repository contains data access logic separated from HTTP
// handlers.  Sentinel errors defined here let handlers map storage outcomes
// onto HTTP statuses without inspecting driver errors themselves.
package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete matches zero rows.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("registro no encontrado")

// ErrUsuarioExists is returned when registration collides with an existing
// login name.  Handlers translate it into an HTTP 409 response.
var ErrUsuarioExists = errors.New("usuario ya registrado")
