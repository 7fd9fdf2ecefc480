package atomicwrite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "snap.json")

	if err := AtomicWriteFile(path, []byte(`{"a":1}`), 0o600); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":1}` {
		t.Fatalf("unexpected content: %s", b)
	}

	// sobrescribir: debe reemplazar completo, no appendear
	if err := AtomicWriteFile(path, []byte(`{"b":2}`), 0o600); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	b, _ = os.ReadFile(path)
	if string(b) != `{"b":2}` {
		t.Fatalf("replace failed, got: %s", b)
	}
}

func TestAtomicWriteFile_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := AtomicWriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only snapshot file, found %d entries", len(entries))
	}
}
