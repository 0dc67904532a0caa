package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// ExportRequest carries the calculator state to flatten into a document,
// with an optional title.
type ExportRequest struct {
	Title  string                   `json:"title"`
	Rooms  []services.Room          `json:"rooms"`
	Params services.EstimatorParams `json:"params"`
}

// buildExport computes the materials summary and flattens it for the
// generators.
func buildExport(req ExportRequest) services.ExportData {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Materials takeoff"
	}
	totals := services.AggregateRooms(req.Rooms)
	results := services.ComputeAll(totals, req.Params)
	return services.BuildExportData(title, time.Now().Format("02 Jan 2006"), totals, results)
}

// HandleExportPDF generates and downloads the materials summary as PDF.
func HandleExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ExportRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		data := buildExport(req)
		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Materials_%s_%d.pdf", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel generates and downloads the materials summary as an
// Excel workbook.
func HandleExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ExportRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		data := buildExport(req)
		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Materials_%s_%d.xlsx", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleExportCSV generates and downloads the materials summary as CSV.
func HandleExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ExportRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		data := buildExport(req)
		csvBytes, err := services.GenerateCSV(data)
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("Materials_%s_%d.csv", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}
