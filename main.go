package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/collections"
	"takeoff/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Apply active project middleware globally
		se.Router.BindFunc(handlers.ActiveProjectMiddleware(app))

		// ── Calculator session ───────────────────────────────────
		se.Router.GET("/api/calculator/state", handlers.HandleStateLoad(app))
		se.Router.PUT("/api/calculator/state", handlers.HandleStateSave(app))

		// ── Reactive computation ─────────────────────────────────
		se.Router.POST("/api/calculator/compute", handlers.HandleCompute(app))
		se.Router.GET("/api/calculator/defaults", handlers.HandleDefaults(app))
		se.Router.POST("/api/calculator/rooms/convert-unit", handlers.HandleConvertUnit(app))

		// ── Saved estimate snapshots ─────────────────────────────
		se.Router.GET("/api/calculator/snapshots", handlers.HandleSnapshotList(app))
		se.Router.POST("/api/calculator/snapshots", handlers.HandleSnapshotSave(app))
		se.Router.DELETE("/api/calculator/snapshots/{id}", handlers.HandleSnapshotDelete(app))

		// ── Material library ─────────────────────────────────────
		se.Router.GET("/api/materials", handlers.HandleMaterialList(app))
		se.Router.POST("/api/materials", handlers.HandleMaterialSave(app))
		se.Router.DELETE("/api/materials/{id}", handlers.HandleMaterialDelete(app))

		// ── Estimate materialization ─────────────────────────────
		se.Router.POST("/api/projects/{projectId}/estimates/from-calculator",
			handlers.HandleMaterializeEstimate(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.POST("/api/calculator/export/pdf", handlers.HandleExportPDF(app))
		se.Router.POST("/api/calculator/export/excel", handlers.HandleExportExcel(app))
		se.Router.POST("/api/calculator/export/csv", handlers.HandleExportCSV(app))

		// ── Projects ─────────────────────────────────────────────
		se.Router.GET("/api/projects", handlers.HandleProjectList(app))
		se.Router.POST("/api/projects", handlers.HandleProjectSave(app))
		se.Router.DELETE("/api/projects/{id}", handlers.HandleProjectDelete(app))
		se.Router.POST("/api/projects/{id}/activate", handlers.HandleProjectActivate(app))
		se.Router.POST("/api/projects/deactivate", handlers.HandleProjectDeactivate(app))

		// Health probe for deploys
		se.Router.GET("/api/health", func(e *core.RequestEvent) error {
			return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
