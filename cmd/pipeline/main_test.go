package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/store"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "content.db")
	cfg := fmt.Sprintf(`gemini:
  api_keys: ["test-key"]
paths:
  input: %q
  exports: %q
store:
  path: %q
logging:
  level: error
`, filepath.Join(dir, "input"), filepath.Join(dir, "exports"), dbPath)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return path, dbPath
}

func seedProject(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if err := st.Register(ctx, store.Project{ID: "ep-1", Title: "Pilot"}); err != nil {
		t.Fatal(err)
	}
	bundle := &content.Bundle{
		KeyMoments:        []content.KeyMoment{{Time: "00:00:00", Text: "Intro", Description: "Hello"}},
		YouTubeTimestamps: []content.YouTubeTimestamp{{Timestamp: "00:00", Description: "Cold Open"}},
	}
	if err := st.SaveContent(ctx, "ep-1", bundle); err != nil {
		t.Fatal(err)
	}
	if err := st.SetStatus(ctx, "ep-1", content.StatusCompleted); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)
	seedProject(t, dbPath)

	out, err := execute(t, "show", "-c", cfgPath)
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "ep-1") || !strings.Contains(out, "completed") {
		t.Errorf("show list output = %q", out)
	}

	out, err = execute(t, "show", "-c", cfgPath, "ep-1")
	if err != nil {
		t.Fatalf("show ep-1 error = %v", err)
	}
	if !strings.Contains(out, "00:00 Cold Open") || !strings.Contains(out, "# Pilot") {
		t.Errorf("show project output = %q", out)
	}

	if _, err := execute(t, "show", "-c", cfgPath, "missing"); err == nil {
		t.Error("show missing project should fail")
	}
}

func TestExportCommand(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)
	seedProject(t, dbPath)
	outDir := t.TempDir()

	out, err := execute(t, "export", "-c", cfgPath, "-o", outDir, "ep-1")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if strings.TrimSpace(out) != filepath.Join(outDir, "ep-1.docx") {
		t.Errorf("export output = %q", out)
	}
}

func TestMissingConfig(t *testing.T) {
	if _, err := execute(t, "show", "-c", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("show without config should fail")
	}
}

func TestProcessRequiresArgs(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	if _, err := execute(t, "process", "-c", cfgPath); err == nil {
		t.Error("process without files should fail")
	}
}
