package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compumax/inventario/internal/model"
)

func newMock(t *testing.T) (*Repo[model.Cliente], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepo(db, ClienteSchema), mock
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clientes (nombre) VALUES (?)")).
		WithArgs("Acme").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.nombre FROM clientes c WHERE c.id = ?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).AddRow(1, "Acme"))

	id, err := repo.Create(context.Background(), &model.Cliente{Nombre: "Acme"}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	got, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Nombre)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.nombre FROM clientes c WHERE c.id = ?")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}))

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFoundLeavesStoreUnchanged(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE clientes SET nombre = ? WHERE id = ?")).
		WithArgs("Acme", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, &model.Cliente{Nombre: "Acme"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	// No further statements: the failed update is the only store access.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clientes WHERE id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clientes WHERE id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSucursalListEnrichesClientName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepo(db, SucursalSchema)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT s.id, s.id_cliente, c.nombre AS nombre_cliente, s.nombre" +
			" FROM sucursales s" +
			" INNER JOIN clientes c ON s.id_cliente = c.id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_cliente", "nombre_cliente", "nombre"}).
			AddRow(1, 1, "Acme", "Sucursal Norte"))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].NombreCliente)
	assert.Equal(t, "Sucursal Norte", items[0].Nombre)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServicioCreateStampsActor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepo(db, ServicioSchema)

	desc := "Cableado nuevo"
	fecha := "2024-05-01"
	actor := uint64(7)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO servicios (id_sucursal, nombre, descripcion, fecha, creado_por) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(1, "Mantenimiento", desc, fecha, 7).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create(context.Background(),
		&model.Servicio{IDSucursal: 1, Nombre: "Mantenimiento", Descripcion: &desc, Fecha: &fecha},
		&actor)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServicioCreateToleratesMissingActor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepo(db, ServicioSchema)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO servicios (id_sucursal, nombre, descripcion, fecha, creado_por) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(1, "Mantenimiento", nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(4, 1))

	_, err = repo.Create(context.Background(), &model.Servicio{IDSucursal: 1, Nombre: "Mantenimiento"}, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentQueriesIncludeAuditAndTimestamps(t *testing.T) {
	repo := NewRepo(nil, RadioAntenaSchema)

	assert.Equal(t,
		"INSERT INTO radios_antenas (id_sucursal, nombre, marca, modelo, mac, sn,"+
			" usuario, contrasena, tipo, ssid, ssid_psw, ip_cliente, creado_por, fecha_creacion)"+
			" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())",
		repo.insertQuery())
	assert.Equal(t,
		"UPDATE radios_antenas SET id_sucursal = ?, nombre = ?, marca = ?, modelo = ?,"+
			" mac = ?, sn = ?, usuario = ?, contrasena = ?, tipo = ?, ssid = ?, ssid_psw = ?,"+
			" ip_cliente = ?, actualizado_por = ?, fecha_actualizacion = NOW() WHERE id = ?",
		repo.updateQuery())
}
