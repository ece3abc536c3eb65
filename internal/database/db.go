package database

import (
	"fmt"
	"time"

	"actas-equipos/internal/logs"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open conecta la base de datos según driver/dsn y acota el pool.
// GLPI corre sobre MySQL/MariaDB; postgres queda disponible para
// instalaciones que alojan las tablas de actas en otro servidor.
func Open(driver, dsn string, maxConns int) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logs.Logger.Infof("conectando a la base de datos (intento %d/%d)...", i, maxAttempts)

		db, err = open(driver, dsn)
		if err == nil {
			break
		}

		logs.Logger.Warnf("fallo de conexión: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("sin conexión tras %d intentos: %w", maxAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Pool acotado: las peticiones que exceden el límite esperan su turno;
	// el context.Context de cada petición acota esa espera.
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logs.Logger.Info("base de datos conectada")
	return db, nil
}

func open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "mysql":
		// DSN ejemplo: user:pass@tcp(10.170.20.142:3306)/glpi?parseTime=true&charset=utf8mb4
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("driver de base de datos no soportado: %s", driver)
	}
}
