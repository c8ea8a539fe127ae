package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compumax/inventario/internal/middleware"
	"github.com/compumax/inventario/internal/repository"
	"github.com/compumax/inventario/internal/utils"
)

// crudApp mounts the inventory handlers behind the JWT gate exactly as the
// router does, against a mocked database.
func crudApp(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := echo.New()
	api := e.Group("/api", middleware.JWTAuth(authSecret))

	cl := NewClientesHandler(db)
	api.GET("/clientes", cl.List)
	api.GET("/clientes/:id", cl.Get)
	api.POST("/clientes", cl.Create)
	api.PUT("/clientes/:id", cl.Update)
	api.DELETE("/clientes/:id", cl.Delete)

	su := NewSucursalesHandler(db)
	api.GET("/sucursales", su.List)
	api.POST("/sucursales", su.Create)

	sv := NewServiciosHandler(db)
	api.POST("/servicios", sv.Create)

	dash := NewDashboardHandler(repository.NewDashboardRepo(db))
	api.GET("/dashboard", dash.List)

	return e, mock
}

func bearer(t *testing.T, id uint64, usuario string) string {
	t.Helper()
	token, err := utils.NewToken(authSecret, id, "Ana", usuario, "usuario", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doAuthJSON(e *echo.Echo, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", auth)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateClienteAndList(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clientes (nombre) VALUES (?)")).
		WithArgs("Acme").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doAuthJSON(e, http.MethodPost, "/api/clientes", `{"nombre":"Acme"}`, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cliente creado correctamente", rec.Body.String())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.nombre FROM clientes c")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).AddRow(1, "Acme"))

	rec = doAuthJSON(e, http.MethodGet, "/api/clientes", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"nombre":"Acme"}]`, rec.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSucursalListShowsClientName(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sucursales (id_cliente, nombre) VALUES (?, ?)")).
		WithArgs(1, "Sucursal Norte").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doAuthJSON(e, http.MethodPost, "/api/sucursales",
		`{"id_cliente":1,"nombre":"Sucursal Norte"}`, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sucursal creada correctamente", rec.Body.String())

	mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN clientes c ON s.id_cliente = c.id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_cliente", "nombre_cliente", "nombre"}).
			AddRow(1, 1, "Acme", "Sucursal Norte"))

	rec = doAuthJSON(e, http.MethodGet, "/api/sucursales", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"id_cliente":1,"nombre_cliente":"Acme","nombre":"Sucursal Norte"}]`,
		rec.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClienteNotFound(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.nombre FROM clientes c WHERE c.id = ?")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}))

	rec := doAuthJSON(e, http.MethodGet, "/api/clientes/99", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cliente no encontrado", rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClienteNotFound(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE clientes SET nombre = ? WHERE id = ?")).
		WithArgs("Acme", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doAuthJSON(e, http.MethodPut, "/api/clientes/99", `{"nombre":"Acme"}`, auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cliente no encontrado", rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClienteTwice(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clientes WHERE id = ?")).
		WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clientes WHERE id = ?")).
		WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doAuthJSON(e, http.MethodDelete, "/api/clientes/1", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cliente eliminado correctamente", rec.Body.String())

	rec = doAuthJSON(e, http.MethodDelete, "/api/clientes/1", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServicioCreateStampsActorFromToken(t *testing.T) {
	e, mock := crudApp(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO servicios (id_sucursal, nombre, descripcion, fecha, creado_por) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(1, "Mantenimiento", "Cableado nuevo", "2024-05-01", 7).
		WillReturnResult(sqlmock.NewResult(3, 1))

	rec := doAuthJSON(e, http.MethodPost, "/api/servicios",
		`{"id_sucursal":1,"nombre":"Mantenimiento","descripcion":"Cableado nuevo","fecha":"2024-05-01"}`,
		bearer(t, 7, "ana1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Servicio creado correctamente", rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudRequiresToken(t *testing.T) {
	e, mock := crudApp(t)

	rec := doAuthJSON(e, http.MethodGet, "/api/clientes", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doAuthJSON(e, http.MethodPost, "/api/clientes", `{"nombre":"Acme"}`, "Bearer invalido")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// No SQL may have run for rejected requests.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardListing(t *testing.T) {
	e, mock := crudApp(t)
	auth := bearer(t, 7, "ana1")

	rows := sqlmock.NewRows([]string{"id", "tipo", "nombre", "modelo", "mac", "ip_cliente", "nombre_sucursal", "nombre_cliente"}).
		AddRow(3, "CAMARA IP", "Cam entrada", "DS-2CD", "AA:BB:CC:00:00:03", "10.0.0.3", "Sucursal Norte", "Acme").
		AddRow(1, "RADIO/ANTENA", "Enlace cerro", "PowerBeam", "AA:BB:CC:00:00:01", "10.0.0.1", "Sucursal Norte", "Acme").
		AddRow(2, "ROUTER/SWITCH", "Core", "RB3011", "AA:BB:CC:00:00:02", nil, "Sucursal Norte", "Acme")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY nombre_cliente, nombre_sucursal, tipo, nombre")).
		WillReturnRows(rows)

	rec := doAuthJSON(e, http.MethodGet, "/api/dashboard", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "CAMARA IP", got[0]["tipo"])
	assert.Equal(t, "RADIO/ANTENA", got[1]["tipo"])
	assert.Equal(t, "ROUTER/SWITCH", got[2]["tipo"])
	assert.Nil(t, got[2]["ip_cliente"])
	require.NoError(t, mock.ExpectationsWereMet())
}
