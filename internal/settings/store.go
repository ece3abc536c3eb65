package settings

import (
	"context"
	"fmt"

	"actas-equipos/internal/actas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Claves de configuración conocidas. Los valores siempre son texto plano;
// quien los consume los interpreta.
const (
	ClaveTitulo            = "titulo_acta"
	ClaveResponsabilidades = "responsabilidades_usuario"
	ClaveLogo              = "logo_path"
)

// Store lee y escribe la configuración global (tabla actas_configuracion).
type Store struct {
	db *gorm.DB
}

func Nuevo(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Obtener carga todas las entradas como un mapa plano clave→valor.
func (s *Store) Obtener(ctx context.Context) (map[string]string, error) {
	var entradas []actas.Configuracion
	if err := s.db.WithContext(ctx).Find(&entradas).Error; err != nil {
		return nil, fmt.Errorf("leer configuración: %w", err)
	}
	cfg := make(map[string]string, len(entradas))
	for _, e := range entradas {
		cfg[e.Clave] = e.Valor
	}
	return cfg, nil
}

// Guardar hace upsert de una clave: la última escritura gana, sin
// versionado ni historial.
func (s *Store) Guardar(ctx context.Context, clave, valor string) error {
	entrada := actas.Configuracion{Clave: clave, Valor: valor}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor"}),
		}).
		Create(&entrada).Error
	if err != nil {
		return fmt.Errorf("guardar configuración %q: %w", clave, err)
	}
	return nil
}
