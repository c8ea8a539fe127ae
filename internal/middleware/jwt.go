package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/compumax/inventario/internal/utils"
)

// Context keys under which JWTAuth stores the decoded claims.  Handlers use
// them to stamp creado_por / actualizado_por on writes.
const (
	CtxUserID  = "user_id"
	CtxUsuario = "usuario"
	CtxNombre  = "nombre"
	CtxRol     = "rol"
)

// JWTAuth returns an Echo middleware that guards every protected route.  It
// requires an `Authorization: Bearer <token>` header, verifies the token and
// injects the identity claims into the request context.  A missing or
// malformed header and an invalid or expired token are all rejected with 401
// before any handler or repository runs; the gate itself holds no state and
// is idempotent per request.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autenticado"})
			}
			claims, err := utils.ParseToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				// Malformed and expired collapse into the same answer on purpose.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Token inválido o expirado"})
			}
			c.Set(CtxUserID, claims.ID)
			c.Set(CtxUsuario, claims.Usuario)
			c.Set(CtxNombre, claims.Nombre)
			c.Set(CtxRol, claims.Rol)
			return next(c)
		}
	}
}
