package main

import (
	"fmt"

	"actas-equipos/internal/actas"
	"actas-equipos/internal/config"
	"actas-equipos/internal/database"
	"actas-equipos/internal/glpi"
	"actas-equipos/internal/handlers"
	"actas-equipos/internal/logs"
	"actas-equipos/internal/server"
	"actas-equipos/internal/settings"
)

func main() {
	cfg := config.Load()
	logs.Init(logs.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		logs.Logger.Fatalf("base de datos: %v", err)
	}
	if err := database.Migrar(db); err != nil {
		logs.Logger.Fatalf("migraciones: %v", err)
	}

	inventario := glpi.NuevoInventario(db)
	repo := actas.NuevoRepositorio(db, inventario)
	ajustes := settings.Nuevo(db)

	h := handlers.Nuevo(inventario, repo, ajustes, cfg.PDFDir, cfg.UploadDir)
	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logs.Logger.Infof("servidor escuchando en %s", addr)
	if err := r.Run(addr); err != nil {
		logs.Logger.Fatalf("server error: %v", err)
	}
}
