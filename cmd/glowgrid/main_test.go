package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReturnsCodeOnConfigError(t *testing.T) {
	t.Chdir(t.TempDir())

	oldConfig, oldDebug := *configFlag, *debugFlag
	*configFlag, *debugFlag = "absent.yaml", true
	defer func() { *configFlag, *debugFlag = oldConfig, oldDebug }()

	if code := run(); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}

	// the log file was opened and written before the error return
	data, err := os.ReadFile(filepath.Join("logs", "glowgrid.log"))
	if err != nil {
		t.Fatalf("Expected debug log file, got %v", err)
	}
	if !strings.Contains(string(data), "glowgrid started") {
		t.Errorf("Expected start line in log, got %q", data)
	}
}
