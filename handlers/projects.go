package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var ProjectStatusOptions = []string{"active", "completed", "on_hold"}

// Project is the JSON shape of a project record.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	Status     string `json:"status"`
	IsActive   bool   `json:"isActive"`
}

// HandleProjectList returns all projects, flagging the one selected by the
// active-project cookie.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("projects", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("project_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		active := GetActiveProject(e.Request)

		projects := make([]Project, 0, len(records))
		for _, rec := range records {
			projects = append(projects, Project{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				ClientName: rec.GetString("client_name"),
				Status:     rec.GetString("status"),
				IsActive:   active != nil && active.ID == rec.Id,
			})
		}

		return e.JSON(http.StatusOK, projects)
	}
}

// ProjectSaveRequest creates a new project.
type ProjectSaveRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	Status     string `json:"status"`
}

// HandleProjectSave validates and creates a project. Names must be unique.
func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ProjectSaveRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			return jsonError(e, http.StatusBadRequest, "Project name is required")
		}

		status := strings.TrimSpace(req.Status)
		validStatus := false
		for _, s := range ProjectStatusOptions {
			if status == s {
				validStatus = true
				break
			}
		}
		if !validStatus {
			status = "active"
		}

		existing, _ := app.FindRecordsByFilter(
			"projects",
			"name = {:name}",
			"", 1, 0,
			map[string]any{"name": name},
		)
		if len(existing) > 0 {
			return jsonError(e, http.StatusBadRequest, "A project with this name already exists")
		}

		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_save: could not find projects collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(projectsCol)
		record.Set("name", name)
		record.Set("client_name", strings.TrimSpace(req.ClientName))
		record.Set("status", status)

		if err := app.Save(record); err != nil {
			log.Printf("project_save: could not save project: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleProjectDelete removes a project; estimates cascade.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing project ID")
		}

		record, err := app.FindRecordById("projects", id)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("project_delete: could not delete %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": id})
	}
}

// HandleProjectActivate sets the active-project cookie (30-day expiry).
func HandleProjectActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_project",
			Value:    projectID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.JSON(http.StatusOK, ActiveProject{ID: rec.Id, Name: rec.GetString("name")})
	}
}

// HandleProjectDeactivate clears the active-project cookie.
func HandleProjectDeactivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_project",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		return e.JSON(http.StatusOK, map[string]bool{"ok": true})
	}
}
