// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_ReferenceCorpus decodes every fixture under
// ref/loh/test-data, when present, and checks it against its matching
// uncompressed file. Mirrors the reference corpus's compat test: skips
// cleanly when no fixture directory is present rather than failing.
func TestCompatibility_ReferenceCorpus(t *testing.T) {
	compressedDir := filepath.Join("ref", "loh", "test-data", "compressed")
	uncompressedDir := filepath.Join("ref", "loh", "test-data", "uncompressed")

	if _, err := os.Stat(compressedDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(compressedDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", compressedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != ".loh" {
			continue
		}

		testName := name
		t.Run(testName, func(t *testing.T) {
			compressedPath := filepath.Join(compressedDir, testName)
			compressedData, err := os.ReadFile(compressedPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", compressedPath, err)
			}

			baseName := testName[:len(testName)-len(".loh")]
			plainPath := filepath.Join(uncompressedDir, baseName)
			plainData, err := os.ReadFile(plainPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", plainPath, err)
			}

			out, err := Decompress(compressedData, true)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", testName, err)
			}
			if !bytes.Equal(out, plainData) {
				t.Fatalf("decoded mismatch for %q: got=%d want=%d", testName, len(out), len(plainData))
			}
		})
	}
}
