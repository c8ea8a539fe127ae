package handler

import (
	"context"      // provides context with timeout for DB calls
	"database/sql" // sentinel errors like sql.ErrNoRows
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/compumax/inventario/internal/config"
	"github.com/compumax/inventario/internal/model"
	"github.com/compumax/inventario/internal/repository"
	"github.com/compumax/inventario/internal/utils"
)

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Nombre     string `json:"nombre"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

type loginReq struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

type loginResp struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// Register creates an account.  The password is hashed before it is
// persisted and no token is issued: the caller logs in separately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Usuario = strings.TrimSpace(req.Usuario)
	if req.Nombre == "" || req.Usuario == "" || req.Contrasena == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos"})
	}
	rol := strings.TrimSpace(req.Rol)
	if rol == "" {
		rol = "usuario"
	}

	hash, err := utils.HashPassword(req.Contrasena, h.Cfg.BcryptCost)
	if err != nil {
		log.Printf("register: hash failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error en registro"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Nombre, req.Usuario, hash, rol); err != nil {
		if errors.Is(err, repository.ErrUsuarioExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Usuario ya registrado"})
		}
		log.Printf("register: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error en registro"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Usuario registrado"})
}

// Login verifies credentials and returns a signed session token plus the
// public view of the user.  The response never says whether it was the login
// name or the password that failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan credenciales"})
	}
	req.Usuario = strings.TrimSpace(req.Usuario)
	if req.Usuario == "" || req.Contrasena == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan credenciales"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsuario(ctx, req.Usuario)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Usuario o contraseña inválidos"})
		}
		log.Printf("login: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error en login"})
	}
	if !u.Activo {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Usuario inactivo"})
	}
	if !utils.VerifyPassword(u.ContrasenaHash, req.Contrasena) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Usuario o contraseña inválidos"})
	}

	token, err := utils.NewToken(h.Cfg.JWTSecret, u.ID, u.Nombre, u.Usuario, u.Rol, h.Cfg.JWTExpires)
	if err != nil {
		log.Printf("login: token signing failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error en login"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token: token,
		User:  model.PublicUser{ID: u.ID, Nombre: u.Nombre, Usuario: u.Usuario, Rol: u.Rol},
	})
}
