// Package testutil provides reusable test utilities for recur integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home        string // Mocked HOME directory
	ProjectDir  string // Test project directory
	GlobalDir   string // ~/.recur equivalent
	ProjectDotD string // .recur in project
	t           *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".recur")
	projectDotD := filepath.Join(tmpProject, ".recur")

	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global .recur: %v", err)
	}
	if err := os.MkdirAll(projectDotD, 0755); err != nil {
		t.Fatalf("Failed to create project .recur: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:        tmpHome,
		ProjectDir:  tmpProject,
		GlobalDir:   globalDir,
		ProjectDotD: projectDotD,
		t:           t,
	}
}

// CreateFile creates a file with the given content in the test environment.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// CreateGlobalFile creates a file relative to the global .recur directory.
func (e *TestEnv) CreateGlobalFile(relPath, content string) {
	e.t.Helper()
	e.CreateFile(filepath.Join(e.GlobalDir, relPath), content)
}

// CreateProjectFile creates a file relative to the project .recur directory.
func (e *TestEnv) CreateProjectFile(relPath, content string) {
	e.t.Helper()
	e.CreateFile(filepath.Join(e.ProjectDotD, relPath), content)
}

// StorePath returns a task-store path inside the mocked home.
func (e *TestEnv) StorePath() string {
	return filepath.Join(e.GlobalDir, "tasks.yaml")
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	_, err := os.Stat(fullPath)
	return err == nil
}
