package repository

// schemas.go declares the six entity schemas consumed by the generic Repo.
// The enriched SELECTs join each row to its parents (sucursal -> cliente)
// and to the display names of the users who created / last modified it, so
// the frontend never has to do N+1 lookups.

import "github.com/compumax/inventario/internal/model"

// ClienteSchema: no parent, no audit columns.
var ClienteSchema = Schema[model.Cliente]{
	Table:   "clientes",
	Alias:   "c",
	Select:  "SELECT c.id, c.nombre FROM clientes c",
	Columns: []string{"nombre"},
	Args:    func(e *model.Cliente) []any { return []any{e.Nombre} },
	Scan: func(s Scanner, e *model.Cliente) error {
		return s.Scan(&e.ID, &e.Nombre)
	},
}

// SucursalSchema joins the owning client for display.
var SucursalSchema = Schema[model.Sucursal]{
	Table: "sucursales",
	Alias: "s",
	Select: "SELECT s.id, s.id_cliente, c.nombre AS nombre_cliente, s.nombre" +
		" FROM sucursales s" +
		" INNER JOIN clientes c ON s.id_cliente = c.id",
	Columns: []string{"id_cliente", "nombre"},
	Args:    func(e *model.Sucursal) []any { return []any{e.IDCliente, e.Nombre} },
	Scan: func(s Scanner, e *model.Sucursal) error {
		return s.Scan(&e.ID, &e.IDCliente, &e.NombreCliente, &e.Nombre)
	},
}

// ServicioSchema joins branch, client and the creator/modifier names.  The
// table stamps actors but keeps no timestamp columns.
var ServicioSchema = Schema[model.Servicio]{
	Table: "servicios",
	Alias: "s",
	Select: "SELECT s.id, s.id_sucursal, c.nombre AS nombre_cliente, su.nombre AS nombre_sucursal," +
		" s.nombre, s.descripcion, s.fecha," +
		" u1.nombre AS creado_por_nombre, u2.nombre AS actualizado_por_nombre" +
		" FROM servicios s" +
		" INNER JOIN sucursales su ON s.id_sucursal = su.id" +
		" INNER JOIN clientes c ON su.id_cliente = c.id" +
		" LEFT JOIN usuarios u1 ON s.creado_por = u1.id" +
		" LEFT JOIN usuarios u2 ON s.actualizado_por = u2.id",
	Columns: []string{"id_sucursal", "nombre", "descripcion", "fecha"},
	Args: func(e *model.Servicio) []any {
		return []any{e.IDSucursal, e.Nombre, e.Descripcion, e.Fecha}
	},
	Scan: func(s Scanner, e *model.Servicio) error {
		return s.Scan(&e.ID, &e.IDSucursal, &e.NombreCliente, &e.NombreSucursal,
			&e.Nombre, &e.Descripcion, &e.Fecha,
			&e.CreadoPorNombre, &e.ActualizadoPorNombre)
	},
	Audit: true,
}

// RadioAntenaSchema carries the radio-specific network fields (tipo, ssid,
// ssid_psw, ip_cliente) on top of the shared hardware shape.
var RadioAntenaSchema = Schema[model.RadioAntena]{
	Table: "radios_antenas",
	Alias: "r",
	Select: "SELECT r.id, r.id_sucursal, s.id_cliente," +
		" r.nombre, r.marca, r.modelo, r.mac, r.sn, r.usuario, r.contrasena," +
		" r.tipo, r.ssid, r.ssid_psw, r.ip_cliente," +
		" s.nombre AS nombre_sucursal, cli.nombre AS nombre_cliente," +
		" u1.nombre AS creado_por_nombre, u2.nombre AS actualizado_por_nombre," +
		" r.fecha_creacion, r.fecha_actualizacion" +
		" FROM radios_antenas r" +
		" INNER JOIN sucursales s ON r.id_sucursal = s.id" +
		" INNER JOIN clientes cli ON s.id_cliente = cli.id" +
		" LEFT JOIN usuarios u1 ON r.creado_por = u1.id" +
		" LEFT JOIN usuarios u2 ON r.actualizado_por = u2.id",
	Columns: []string{"id_sucursal", "nombre", "marca", "modelo", "mac", "sn",
		"usuario", "contrasena", "tipo", "ssid", "ssid_psw", "ip_cliente"},
	Args: func(e *model.RadioAntena) []any {
		return []any{e.IDSucursal, e.Nombre, e.Marca, e.Modelo, e.MAC, e.SN,
			e.Usuario, e.Contrasena, e.Tipo, e.SSID, e.SSIDPsw, e.IPCliente}
	},
	Scan: func(s Scanner, e *model.RadioAntena) error {
		return s.Scan(&e.ID, &e.IDSucursal, &e.IDCliente,
			&e.Nombre, &e.Marca, &e.Modelo, &e.MAC, &e.SN, &e.Usuario, &e.Contrasena,
			&e.Tipo, &e.SSID, &e.SSIDPsw, &e.IPCliente,
			&e.NombreSucursal, &e.NombreCliente,
			&e.CreadoPorNombre, &e.ActualizadoPorNombre,
			&e.FechaCreacion, &e.FechaActualizacion)
	},
	Audit:  true,
	Stamps: true,
}

// RouterSwitchSchema: shared hardware shape without a client-facing IP.
var RouterSwitchSchema = Schema[model.RouterSwitch]{
	Table: "router_switch",
	Alias: "rs",
	Select: "SELECT rs.id, rs.id_sucursal, su.id_cliente," +
		" su.nombre AS nombre_sucursal, c.nombre AS nombre_cliente," +
		" rs.nombre, rs.marca, rs.modelo, rs.mac, rs.sn, rs.usuario, rs.contrasena," +
		" u1.nombre AS creado_por_nombre, u2.nombre AS actualizado_por_nombre," +
		" rs.fecha_creacion, rs.fecha_actualizacion" +
		" FROM router_switch rs" +
		" INNER JOIN sucursales su ON rs.id_sucursal = su.id" +
		" INNER JOIN clientes c ON su.id_cliente = c.id" +
		" LEFT JOIN usuarios u1 ON rs.creado_por = u1.id" +
		" LEFT JOIN usuarios u2 ON rs.actualizado_por = u2.id",
	Columns: []string{"id_sucursal", "nombre", "marca", "modelo", "mac", "sn",
		"usuario", "contrasena"},
	Args: func(e *model.RouterSwitch) []any {
		return []any{e.IDSucursal, e.Nombre, e.Marca, e.Modelo, e.MAC, e.SN,
			e.Usuario, e.Contrasena}
	},
	Scan: func(s Scanner, e *model.RouterSwitch) error {
		return s.Scan(&e.ID, &e.IDSucursal, &e.IDCliente,
			&e.NombreSucursal, &e.NombreCliente,
			&e.Nombre, &e.Marca, &e.Modelo, &e.MAC, &e.SN, &e.Usuario, &e.Contrasena,
			&e.CreadoPorNombre, &e.ActualizadoPorNombre,
			&e.FechaCreacion, &e.FechaActualizacion)
	},
	Audit:  true,
	Stamps: true,
}

// CamaraIPSchema adds the camera location fields (ubicacion, zona).
var CamaraIPSchema = Schema[model.CamaraIP]{
	Table: "camaras_ip",
	Alias: "c",
	Select: "SELECT c.id, c.id_sucursal, s.id_cliente," +
		" c.nombre, c.modelo, c.mac, c.sn, c.usuario, c.contrasena," +
		" c.ubicacion, c.zona, c.ip_cliente," +
		" s.nombre AS nombre_sucursal, cli.nombre AS nombre_cliente," +
		" u1.nombre AS creado_por_nombre, u2.nombre AS actualizado_por_nombre," +
		" c.fecha_creacion, c.fecha_actualizacion" +
		" FROM camaras_ip c" +
		" INNER JOIN sucursales s ON c.id_sucursal = s.id" +
		" INNER JOIN clientes cli ON s.id_cliente = cli.id" +
		" LEFT JOIN usuarios u1 ON c.creado_por = u1.id" +
		" LEFT JOIN usuarios u2 ON c.actualizado_por = u2.id",
	Columns: []string{"id_sucursal", "nombre", "modelo", "mac", "sn",
		"usuario", "contrasena", "ubicacion", "zona", "ip_cliente"},
	Args: func(e *model.CamaraIP) []any {
		return []any{e.IDSucursal, e.Nombre, e.Modelo, e.MAC, e.SN,
			e.Usuario, e.Contrasena, e.Ubicacion, e.Zona, e.IPCliente}
	},
	Scan: func(s Scanner, e *model.CamaraIP) error {
		return s.Scan(&e.ID, &e.IDSucursal, &e.IDCliente,
			&e.Nombre, &e.Modelo, &e.MAC, &e.SN, &e.Usuario, &e.Contrasena,
			&e.Ubicacion, &e.Zona, &e.IPCliente,
			&e.NombreSucursal, &e.NombreCliente,
			&e.CreadoPorNombre, &e.ActualizadoPorNombre,
			&e.FechaCreacion, &e.FechaActualizacion)
	},
	Audit:  true,
	Stamps: true,
}
