package repository

import (
	"context"
	"database/sql"

	"github.com/compumax/inventario/internal/model"
)

// DashboardRepo produces the read-only equipment listing shown on the
// dashboard: the three hardware tables unioned into one normalized shape.
type DashboardRepo struct{ db *sql.DB }

func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{db: db} }

// Router/switch rows have no client-facing IP, so the union normalizes that
// column to NULL for them.  Sorting is client, branch, kind, name.
const dashboardQuery = "SELECT r.id, 'RADIO/ANTENA' AS tipo, r.nombre, r.modelo, r.mac, r.ip_cliente," +
	" s.nombre AS nombre_sucursal, c.nombre AS nombre_cliente" +
	" FROM radios_antenas r" +
	" INNER JOIN sucursales s ON s.id = r.id_sucursal" +
	" INNER JOIN clientes c ON c.id = s.id_cliente" +
	" UNION ALL" +
	" SELECT rs.id, 'ROUTER/SWITCH' AS tipo, rs.nombre, rs.modelo, rs.mac, CAST(NULL AS CHAR) AS ip_cliente," +
	" s.nombre AS nombre_sucursal, c.nombre AS nombre_cliente" +
	" FROM router_switch rs" +
	" INNER JOIN sucursales s ON s.id = rs.id_sucursal" +
	" INNER JOIN clientes c ON c.id = s.id_cliente" +
	" UNION ALL" +
	" SELECT cam.id, 'CAMARA IP' AS tipo, cam.nombre, cam.modelo, cam.mac, cam.ip_cliente," +
	" s.nombre AS nombre_sucursal, c.nombre AS nombre_cliente" +
	" FROM camaras_ip cam" +
	" INNER JOIN sucursales s ON s.id = cam.id_sucursal" +
	" INNER JOIN clientes c ON c.id = s.id_cliente" +
	" ORDER BY nombre_cliente, nombre_sucursal, tipo, nombre"

// List returns every equipment row tagged with its kind.
func (r *DashboardRepo) List(ctx context.Context) ([]*model.EquipoDashboard, error) {
	rows, err := r.db.QueryContext(ctx, dashboardQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.EquipoDashboard
	for rows.Next() {
		e := new(model.EquipoDashboard)
		if err := rows.Scan(&e.ID, &e.Tipo, &e.Nombre, &e.Modelo, &e.MAC,
			&e.IPCliente, &e.NombreSucursal, &e.NombreCliente); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
