package actas

import "fmt"

// ErrorValidacion señala datos de entrada mal formados (asociaciones
// inválidas, campos obligatorios ausentes). Se detecta antes de abrir la
// transacción.
type ErrorValidacion struct {
	Campo  string
	Motivo string
}

func (e *ErrorValidacion) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Campo, e.Motivo)
}

// ErrorEscritura envuelve un fallo de la base de datos durante la
// creación de un acta; la transacción ya quedó revertida.
type ErrorEscritura struct {
	Op  string
	Err error
}

func (e *ErrorEscritura) Error() string {
	return fmt.Sprintf("actas: %s: %v", e.Op, e.Err)
}

func (e *ErrorEscritura) Unwrap() error { return e.Err }
