package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteMediaFile creates a stand-in media file of the given size, making
// parent directories as needed. A size of zero produces an empty file, which
// file validation treats as invalid.
func WriteMediaFile(t testing.TB, path string, size int64) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var payload []byte
	if size > 0 {
		payload = bytes.Repeat([]byte{0xAB}, int(size))
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
