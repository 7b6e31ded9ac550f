package mapping

import (
	"slices"
	"strings"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	m, err := Normalize("db", "factory", RawMapping{"factory": "newDB"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if m.Name() != "db" || m.Type() != "factory" {
		t.Errorf("unexpected identity %s", m)
	}
	if len(m.Arguments()) != 0 {
		t.Errorf("expected no arguments, got %v", m.Arguments())
	}
	if m.Cache() {
		t.Error("expected cache to default to false")
	}
	if len(m.Tags()) != 0 {
		t.Errorf("expected no tags, got %v", m.Tags())
	}
	if v, ok := m.Field("factory"); !ok || v != "newDB" {
		t.Errorf("expected strategy field to be kept, got %v", v)
	}
}

func TestNormalizeGenericFields(t *testing.T) {
	raw := RawMapping{
		KeyName:      "ignored",
		KeyType:      "ignored",
		KeyArguments: []any{"a", "b"},
		KeyCache:     "true",
		KeyTags:      []string{"x", "y", "x"},
	}
	m, err := Normalize("svc", "factory", raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !slices.Equal(m.Arguments(), []string{"a", "b"}) {
		t.Errorf("unexpected arguments %v", m.Arguments())
	}
	if !m.Cache() {
		t.Error("expected cache true")
	}
	if !slices.Equal(m.Tags(), []string{"x", "y"}) {
		t.Errorf("expected deduplicated tags, got %v", m.Tags())
	}
	for _, k := range []string{KeyName, KeyType, KeyArguments, KeyCache, KeyTags} {
		if _, ok := m.Field(k); ok {
			t.Errorf("generic key %q should not be a strategy field", k)
		}
	}
}

func TestNormalizeTagForms(t *testing.T) {
	tests := []struct {
		name string
		tags any
		want []string
	}{
		{"single string", "repo", []string{"repo"}},
		{"set", map[string]bool{"b": true, "a": true, "c": false}, []string{"a", "b"}},
		{"any list", []any{"a"}, []string{"a"}},
		{"yaml set", map[string]any{"web": nil, "api": nil}, []string{"api", "web"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Normalize("x", "value", RawMapping{KeyTags: tc.tags})
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if !slices.Equal(m.Tags(), tc.want) {
				t.Errorf("got %v, want %v", m.Tags(), tc.want)
			}
		})
	}
}

func TestNormalizeShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  RawMapping
		want string
	}{
		{"arguments not a list", RawMapping{KeyArguments: 42}, "arguments"},
		{"argument not a string", RawMapping{KeyArguments: []any{"a", 1}}, "element 1"},
		{"tags not strings", RawMapping{KeyTags: []any{true}}, "tags"},
		{"cache not a bool", RawMapping{KeyCache: 1}, "cache"},
		{"cache bad string", RawMapping{KeyCache: "maybe"}, "cache"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize("x", "factory", tc.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestNormalizeDoesNotMutateRaw(t *testing.T) {
	args := []string{"a"}
	raw := RawMapping{KeyArguments: args}
	m, _ := Normalize("x", "factory", raw)

	got := m.Arguments()
	got[0] = "changed"
	if m.Arguments()[0] != "a" {
		t.Error("Arguments must return a copy")
	}
	if args[0] != "a" || len(raw) != 1 {
		t.Error("raw mapping must not be modified")
	}
}

func TestHasTags(t *testing.T) {
	tagged, _ := Normalize("a", "value", RawMapping{KeyTags: []string{"a", "b"}})
	untagged, _ := Normalize("b", "value", RawMapping{})

	if !tagged.HasTags() || !untagged.HasTags() {
		t.Error("empty request should match every mapping")
	}
	if !tagged.HasTags("a", "b") {
		t.Error("expected superset match")
	}
	if tagged.HasTags("a", "c") {
		t.Error("expected missing tag to fail")
	}
	if untagged.HasTags("a") {
		t.Error("untagged mapping should only match an empty request")
	}
}

func TestWithCopies(t *testing.T) {
	m, _ := Normalize("a", "factory", RawMapping{KeyArguments: []string{"x"}})
	c := m.With("factory", "f").WithCache(true).WithArguments("y", "z")

	if _, ok := m.Field("factory"); ok {
		t.Error("With must not modify the receiver")
	}
	if m.Cache() {
		t.Error("WithCache must not modify the receiver")
	}
	if !slices.Equal(m.Arguments(), []string{"x"}) {
		t.Error("WithArguments must not modify the receiver")
	}
	if !c.Cache() || !slices.Equal(c.Arguments(), []string{"y", "z"}) {
		t.Errorf("unexpected copy %v %v", c.Cache(), c.Arguments())
	}
}

func TestDefinitionsOrder(t *testing.T) {
	d := NewDefinitions().
		Add("zeta", RawMapping{}).
		Add("alpha", RawMapping{}).
		Add("mid", RawMapping{})
	d.Add("zeta", RawMapping{"cache": true})

	if !slices.Equal(d.Names(), []string{"zeta", "alpha", "mid"}) {
		t.Errorf("expected insertion order, got %v", d.Names())
	}
	raw, _ := d.Get("zeta")
	if raw["cache"] != true {
		t.Error("expected re-added mapping to replace the raw value")
	}

	var seen []string
	d.Each(func(name string, _ RawMapping) { seen = append(seen, name) })
	if !slices.Equal(seen, d.Names()) {
		t.Errorf("Each order mismatch: %v", seen)
	}
}

func TestDefinitionsFromMapSorted(t *testing.T) {
	d := DefinitionsFromMap(map[string]RawMapping{"c": {}, "a": {}, "b": {}})
	if !slices.Equal(d.Names(), []string{"a", "b", "c"}) {
		t.Errorf("expected sorted names, got %v", d.Names())
	}
	if d.Len() != 3 {
		t.Errorf("expected 3, got %d", d.Len())
	}
}
