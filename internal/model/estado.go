package model

// Estado values shared by every resource that can be switched on and off.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Estados of an Inscripcion. There is no transition guard: any value may
// follow any other.
const (
	InscripcionPendiente = "pendiente"
	InscripcionAprobado  = "aprobado"
	InscripcionRechazado = "rechazado"
)

// Tipos of a Categoria.
const (
	TipoTaller   = "taller"
	TipoServicio = "servicio"
)

var (
	EstadosActivacion  = []string{EstadoActivo, EstadoInactivo}
	EstadosInscripcion = []string{InscripcionPendiente, InscripcionAprobado, InscripcionRechazado}
	TiposCategoria     = []string{TipoTaller, TipoServicio}
)
