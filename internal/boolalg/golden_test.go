package boolalg

import (
	"strings"
	"testing"

	"github.com/feupos/boolean-algebra/examples"
)

// TestGoldenExamples runs every embedded .bool file through the full
// pipeline and compares against the expected minimization.
func TestGoldenExamples(t *testing.T) {
	entries, err := examples.FS.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no .bool files found in examples FS")
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".bool")
		t.Run(name, func(t *testing.T) {
			data, err := examples.FS.ReadFile(entry.Name())
			if err != nil {
				t.Fatalf("read %s: %v", entry.Name(), err)
			}
			input, want := parseGolden(t, string(data))
			got, err := SimplifyText(input)
			if err != nil {
				t.Fatalf("simplify %q: %v", input, err)
			}
			if got != want {
				t.Errorf("simplify %q = %q, want %q", input, got, want)
			}
		})
	}
}

func parseGolden(t *testing.T, data string) (input, want string) {
	t.Helper()
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "//"):
		case strings.HasPrefix(line, "=> "):
			want = strings.TrimPrefix(line, "=> ")
		default:
			input = line
		}
	}
	if input == "" || want == "" {
		t.Fatal("golden file needs a formula line and a => line")
	}
	return input, want
}
