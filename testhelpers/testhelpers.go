// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record with the given name and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("client_name", "Test Client")
	record.Set("status", "active")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestSavedMaterial creates a material preset record and returns it.
func CreateTestSavedMaterial(t *testing.T, app *pocketbase.PocketBase, name, category string, params map[string]string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("saved_materials")
	if err != nil {
		t.Fatalf("failed to find saved_materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("params", params)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test material: %v", err)
	}

	return record
}

// CreateTestSnapshot creates a saved_estimates record holding the given rooms payload.
func CreateTestSnapshot(t *testing.T, app *pocketbase.PocketBase, name string, rooms any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("saved_estimates")
	if err != nil {
		t.Fatalf("failed to find saved_estimates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("rooms", rooms)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test snapshot: %v", err)
	}

	return record
}

// CreateTestEstimate creates an estimate record linked to a project.
func CreateTestEstimate(t *testing.T, app *pocketbase.PocketBase, projectID, name, number string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("failed to find estimates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("name", name)
	record.Set("number", number)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test estimate: %v", err)
	}

	return record
}
