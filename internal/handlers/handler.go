package handlers

import (
	"actas-equipos/internal/actas"
	"actas-equipos/internal/glpi"
	"actas-equipos/internal/settings"
)

// Handler agrupa las dependencias de todos los handlers. Se construye una
// vez en el arranque; nada de estado global.
type Handler struct {
	Inventario *glpi.Inventario
	Repo       *actas.Repositorio
	Settings   *settings.Store
	PDFDir     string
	UploadDir  string
}

func Nuevo(inv *glpi.Inventario, repo *actas.Repositorio, st *settings.Store, pdfDir, uploadDir string) *Handler {
	return &Handler{
		Inventario: inv,
		Repo:       repo,
		Settings:   st,
		PDFDir:     pdfDir,
		UploadDir:  uploadDir,
	}
}
