package glpi

import "fmt"

// QueryError envuelve un fallo de la base de datos con la operación y el
// tipo de equipo que lo provocaron. No hay reintentos: el error sube tal
// cual hasta el handler.
type QueryError struct {
	Tipo TipoEquipo
	Op   string
	Err  error
}

func (e *QueryError) Error() string {
	if e.Tipo == "" {
		return fmt.Sprintf("glpi: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("glpi: %s (%s): %v", e.Op, e.Tipo, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func errConsulta(tipo TipoEquipo, op string, err error) error {
	return &QueryError{Tipo: tipo, Op: op, Err: err}
}
