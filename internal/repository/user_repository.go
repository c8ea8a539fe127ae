package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/compumax/inventario/internal/model"
)

// UserRepo handles the `usuarios` table.  Users are never deleted; accounts
// are disabled by clearing the activo flag instead.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with an already-hashed password and returns the new
// id.  New accounts start active.  A duplicate login name surfaces as
// ErrUsuarioExists (MySQL error 1062 on the unique index).
func (r *UserRepo) Create(ctx context.Context, nombre, usuario, hash, rol string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO usuarios (nombre, usuario, contrasena_hash, rol, activo, fecha_creacion) VALUES (?,?,?,?,1,NOW())",
		nombre, usuario, hash, rol)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUsuarioExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsuario fetches a user by unique login name.
func (r *UserRepo) GetByUsuario(ctx context.Context, usuario string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, nombre, usuario, contrasena_hash, rol, activo FROM usuarios WHERE usuario = ? LIMIT 1",
		usuario).Scan(&u.ID, &u.Nombre, &u.Usuario, &u.ContrasenaHash, &u.Rol, &u.Activo)
	return u, err
}
