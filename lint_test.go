package xylem_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/xylem"
	"github.com/stretchr/testify/require"
)

// TestLintGolden parses every .xml file in testdata/ and compares the
// dumped document with the .lint file next to it. Files without a .lint
// file are skipped.
//
// Environment variable XYLEM_LINT_TEST_FILES can be set to test only specific files:
//
//	XYLEM_LINT_TEST_FILES=mixed.xml,entities.xml go test -run TestLintGolden
func TestLintGolden(t *testing.T) {
	only := map[string]struct{}{}
	if v := os.Getenv("XYLEM_LINT_TEST_FILES"); v != "" {
		for _, f := range strings.Split(v, ",") {
			only[strings.TrimSpace(f)] = struct{}{}
		}
	}

	dir := "testdata"
	files, err := os.ReadDir(dir)
	require.NoError(t, err, "os.ReadDir should succeed")

	for _, fi := range files {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".xml") {
			continue
		}
		if len(only) > 0 {
			if _, ok := only[fi.Name()]; !ok {
				continue
			}
		}

		fn := filepath.Join(dir, fi.Name())
		goldenfn := strings.TrimSuffix(fn, ".xml") + ".lint"
		if _, err := os.Stat(goldenfn); err != nil {
			t.Logf("%s does not exist, skipping lint test...", goldenfn)
			continue
		}

		t.Run(fi.Name(), func(t *testing.T) {
			golden, err := os.ReadFile(goldenfn)
			require.NoError(t, err, "os.ReadFile should succeed for golden file")

			input, err := os.ReadFile(fn)
			require.NoError(t, err, "os.ReadFile should succeed for input file")

			doc, err := xylem.NewParser().Parse(context.Background(), input)
			require.NoError(t, err, "Parse should succeed for %s", fn)

			var output bytes.Buffer
			d := xylem.Dumper{}
			require.NoError(t, d.DumpDoc(&output, doc))

			actual := output.String()
			if expected := string(golden); expected != actual {
				// keep the actual output around for inspection
				if err := os.WriteFile(fn+".lint.err", []byte(actual), 0600); err != nil {
					t.Logf("Failed to save output: %s", err)
				} else {
					t.Logf("Actual output saved to %s", fn+".lint.err")
				}
			}
			require.Equal(t, string(golden), actual, "dumped output should match golden file for %s", fn)
		})
	}
}
