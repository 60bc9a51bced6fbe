package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCLINoteLifecycle drives the full scripting surface of the binary:
// add, list, search, read, theme, delete.
func TestCLINoteLifecycle(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "peat-cli-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	peatBin := buildPeatBinary(t, tempDir)
	stateDir := filepath.Join(tempDir, "state")
	state := []string{"--state-dir", stateDir}

	// 1. Add a note with title and content
	out := runCmd(t, tempDir, nil, peatBin, append([]string{"add", "Groceries", "--content", "milk and eggs"}, state...)...)
	if !strings.Contains(out, "Created Groceries") {
		t.Fatalf("Expected creation confirmation, got:\n%s", out)
	}
	id := extractID(t, out)

	// 2. List shows it, newest first
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"list"}, state...)...)
	if !strings.Contains(out, "Groceries") || !strings.Contains(out, id) {
		t.Errorf("Expected list to show the note, got:\n%s", out)
	}

	// 3. Search matches content, case-insensitively
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"search", "MILK", "--json"}, state...)...)
	var matches []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("search --json produced invalid JSON: %v\n%s", err, out)
	}
	if len(matches) != 1 || matches[0].ID != id {
		t.Errorf("Expected exactly the groceries note, got %+v", matches)
	}

	// 4. Read by title and by ID prefix. --plain is byte-exact raw content;
	// the default path styles the markdown but keeps the words.
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"read", "Groceries", "--plain"}, state...)...)
	if out != "milk and eggs\n" {
		t.Errorf("Expected raw note content, got:\n%s", out)
	}
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"read", id[:8], "--plain"}, state...)...)
	if !strings.Contains(out, "milk and eggs") {
		t.Errorf("Expected prefix lookup to find the note, got:\n%s", out)
	}
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"read", "Groceries"}, state...)...)
	if !strings.Contains(out, "milk") {
		t.Errorf("Expected rendered content to keep the words, got:\n%s", out)
	}

	// 5. Theme round-trips through its own key
	runCmd(t, tempDir, nil, peatBin, append([]string{"theme", "dark"}, state...)...)
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"theme"}, state...)...)
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("Expected persisted dark theme, got %q", out)
	}

	// 6. The state dir holds one file per key
	if _, err := os.Stat(filepath.Join(stateDir, "notes.json")); err != nil {
		t.Errorf("Expected notes.json in state dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(stateDir, "theme.json")); err != nil {
		t.Errorf("Expected theme.json in state dir: %v", err)
	}

	// 7. Delete empties the notebook (rm is an alias)
	runCmd(t, tempDir, nil, peatBin, append([]string{"rm", id}, state...)...)
	out = runCmd(t, tempDir, nil, peatBin, append([]string{"list"}, state...)...)
	if strings.Contains(out, "Groceries") {
		t.Errorf("Expected note to be gone, got:\n%s", out)
	}
}

// TestCLIExportImport moves notes out as frontmatter markdown and back into
// a fresh notebook.
func TestCLIExportImport(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "peat-export-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	peatBin := buildPeatBinary(t, tempDir)
	srcState := []string{"--state-dir", filepath.Join(tempDir, "src")}
	dstState := []string{"--state-dir", filepath.Join(tempDir, "dst")}
	exportDir := filepath.Join(tempDir, "exported")

	runCmd(t, tempDir, nil, peatBin, append([]string{"add", "First", "--content", "alpha"}, srcState...)...)
	runCmd(t, tempDir, nil, peatBin, append([]string{"add", "Second", "--content", "beta"}, srcState...)...)

	// Export everything as markdown with frontmatter headers.
	runCmd(t, tempDir, nil, peatBin, append([]string{"export", "--all", "--out", exportDir}, srcState...)...)
	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 exported files, got %d", len(entries))
	}
	exported := make([]string, 0, len(entries))
	for _, e := range entries {
		exported = append(exported, filepath.Join(exportDir, e.Name()))
	}

	// A fresh notebook imports them with identity intact.
	out := runCmd(t, tempDir, nil, peatBin, append(append([]string{"import"}, exported...), dstState...)...)
	if !strings.Contains(out, "Imported 2 of 2") {
		t.Errorf("Expected both notes imported, got:\n%s", out)
	}

	// Importing the same files again is a no-op: IDs already exist.
	out = runCmd(t, tempDir, nil, peatBin, append(append([]string{"import"}, exported...), dstState...)...)
	if !strings.Contains(out, "Imported 0 of 2") {
		t.Errorf("Expected re-import to skip existing notes, got:\n%s", out)
	}

	out = runCmd(t, tempDir, nil, peatBin, append([]string{"search", "alpha"}, dstState...)...)
	if !strings.Contains(out, "First") {
		t.Errorf("Expected imported content to be searchable, got:\n%s", out)
	}
}

// extractID pulls the note ID out of the "Created <title> (<id>)" line.
func extractID(t *testing.T, out string) string {
	t.Helper()
	open := strings.LastIndex(out, "(")
	end := strings.LastIndex(out, ")")
	if open < 0 || end < open {
		t.Fatalf("Could not find note ID in output:\n%s", out)
	}
	id := out[open+1 : end]
	if id == "" {
		t.Fatalf("Empty note ID in output:\n%s", out)
	}
	return id
}
