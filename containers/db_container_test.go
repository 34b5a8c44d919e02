package containers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSchema(t *testing.T) {
	path, err := findSchema()
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if filepath.Base(path) != "schema.sql" {
		t.Errorf("expected: 'schema.sql', got: '%v'", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("schema not found at %s: %v", path, err)
	}
}

func TestFindSchema_outsideModule(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("error getting working directory: %v", err)
	}
	defer os.Chdir(wd)

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("error changing directory: %v", err)
	}
	if _, err := findSchema(); err == nil {
		t.Errorf("expected an error outside of the module")
	}
}
