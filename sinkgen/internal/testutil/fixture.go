// Package testutil provides shared test infrastructure for the sinkgen
// packages: txtar fixtures holding expected generator output.
package testutil

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Fixture is a parsed testdata archive.
type Fixture struct {
	Name    string
	Comment string
	files   map[string][]byte
}

// LoadFixture loads sinkgen/testdata/<name>.txtar.
// The path is resolved relative to this source file: sinkgen/internal/testutil/ → sinkgen/testdata/.
func LoadFixture(t *testing.T, name string) *Fixture {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", name+".txtar")
	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}

	f := &Fixture{Name: name, Comment: string(archive.Comment), files: make(map[string][]byte, len(archive.Files))}
	for _, file := range archive.Files {
		f.files[file.Name] = file.Data
	}
	return f
}

// File returns the named file of the fixture, failing the test if it is absent.
func (f *Fixture) File(t *testing.T, name string) []byte {
	t.Helper()
	data, ok := f.files[name]
	if !ok {
		t.Fatalf("fixture %s has no file %s", f.Name, name)
	}
	return data
}

// Fragments returns the non-blank, trimmed lines of the named file.
func (f *Fixture) Fragments(t *testing.T, name string) []string {
	t.Helper()
	var out []string
	for _, line := range strings.Split(string(f.File(t, name)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// AssertContainsAll reports every fragment missing from got.
func AssertContainsAll(t *testing.T, artifact string, got []byte, fragments []string) {
	t.Helper()
	text := string(got)
	for _, frag := range fragments {
		if !strings.Contains(text, frag) {
			t.Errorf("%s: missing %q", artifact, frag)
		}
	}
}
