package glpi

// Equipo es la proyección uniforme de un activo sin importar su tipo de
// origen. Se calcula en cada lectura; nunca se persiste. El ID sólo es
// único dentro de su tipo: la identidad real es el par (Itemtype, ID).
type Equipo struct {
	ID               int               `json:"id"`
	Itemtype         TipoEquipo        `json:"itemtype,omitempty"`
	Nombre           string            `json:"nombre"`
	NumeroInventario string            `json:"numero_inventario"`
	Serial           string            `json:"serial"`
	Fabricante       *string           `json:"fabricante"`
	Modelo           *string           `json:"modelo"`
	Estado           *string           `json:"estado"`
	UsuarioAsignado  *string           `json:"usuario_asignado"`
	Ubicacion        *string           `json:"ubicacion"`
	Tecnico          *string           `json:"tecnico"`
	Especificaciones map[string]string `json:"especificaciones"`
}

// Usuario es un usuario activo de GLPI, candidato a recibir equipos.
type Usuario struct {
	ID             int    `json:"id"`
	Realname       string `json:"-"`
	Firstname      string `json:"-"`
	NombreCompleto string `json:"fullname"`
}
