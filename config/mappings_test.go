package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mcortesi/dinjector/mapping"
)

func TestParseMappingsKeepsOrder(t *testing.T) {
	defs, err := ParseMappings([]byte(`
zeta:
  type: value
  value: 1
alpha:
  type: factory
  factory: newAlpha
  arguments: [zeta, ctx]
  tags: [http]
middle:
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := defs.Names(), []string{"zeta", "alpha", "middle"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected names %v, got %v", want, got)
	}

	alpha, ok := defs.Get("alpha")
	if !ok {
		t.Fatal("expected alpha definition")
	}
	if alpha["factory"] != "newAlpha" {
		t.Errorf("expected factory newAlpha, got %v", alpha["factory"])
	}
	args, ok := alpha["arguments"].([]any)
	if !ok || len(args) != 2 || args[0] != "zeta" || args[1] != "ctx" {
		t.Errorf("unexpected arguments: %#v", alpha["arguments"])
	}

	middle, ok := defs.Get("middle")
	if !ok || len(middle) != 0 {
		t.Errorf("expected empty middle definition, got %v", middle)
	}
}

func TestParseMappingsTagSet(t *testing.T) {
	defs, err := ParseMappings([]byte("api:\n  type: value\n  value: 1\n  tags: !!set {web, public}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := defs.Get("api")
	m, err := mapping.Normalize("api", "value", raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got, want := m.Tags(), []string{"public", "web"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected tags %v, got %v", want, got)
	}
}

func TestParseMappingsEmpty(t *testing.T) {
	defs, err := ParseMappings(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defs.Len() != 0 {
		t.Errorf("expected no definitions, got %d", defs.Len())
	}
}

func TestParseMappingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"not a map", "- a\n- b\n", "expected a map"},
		{"scalar definition", "db: postgres\n", `mapping "db" must be a map`},
		{"list definition", "db: [1, 2]\n", `mapping "db" must be a map`},
		{"duplicate", "db:\n  value: 1\ndb:\n  value: 2\n", "duplicate"},
		{"invalid yaml", "db: [unclosed\n", "invalid yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMappings([]byte(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadMappings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mappings.yml", "greeting:\n  type: value\n  value: hello\n")

	defs, err := LoadMappings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, ok := defs.Get("greeting")
	if !ok || raw["value"] != "hello" {
		t.Errorf("unexpected definition: %v", raw)
	}

	if _, err := LoadMappings(dir + "/missing.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}
