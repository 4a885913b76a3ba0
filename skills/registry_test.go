package skills

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	s := newStubSkill("test_skill")

	if err := r.Register(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := r.Get("test_skill")
	if !ok {
		t.Fatal("expected skill, got none")
	}
	if got != Skill(s) {
		t.Error("expected the registered instance back, identity preserved")
	}
}

func TestRegistryEmptyName(t *testing.T) {
	r := NewRegistry()

	err := r.Register(newStubSkill(""))
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	err = r.Register(newStubSkill("   "))
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName for blank name, got %v", err)
	}
}

func TestRegistryOverwriteLastWriteWins(t *testing.T) {
	r := NewRegistry()
	first := newStubSkill("dup")
	second := newStubSkill("dup")

	if err := r.Register(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(second); err != nil {
		t.Fatalf("overwrite must not error, got %v", err)
	}

	got, _ := r.Get("dup")
	if got != Skill(second) {
		t.Error("expected the second registration to win")
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 skill, got %d", r.Len())
	}
}

func TestRegistryRegisterFunc(t *testing.T) {
	r := NewRegistry()

	err := r.RegisterFunc(func() (Skill, error) {
		return newStubSkill("constructed"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.Get("constructed"); !ok {
		t.Error("expected constructed skill to be registered")
	}

	ctorErr := fmt.Errorf("boom")
	err = r.RegisterFunc(func() (Skill, error) { return nil, ctorErr })
	if !errors.Is(err, ctorErr) {
		t.Errorf("expected constructor error to propagate, got %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newStubSkill("gone")); err != nil {
		t.Fatal(err)
	}

	if !r.Unregister("gone") {
		t.Error("expected removal to be reported")
	}
	if _, ok := r.Get("gone"); ok {
		t.Error("expected skill to be absent after unregister")
	}
	if r.Unregister("gone") {
		t.Error("expected second unregister to be a no-op")
	}
}

func TestRegistryNamesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(newStubSkill(name)); err != nil {
			t.Fatal(err)
		}
	}

	names := r.Names()
	want := []string{"zeta", "alpha", "mid"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistryFindByCategory(t *testing.T) {
	r := NewRegistry()

	withCategory := &categorySkill{stubSkill: newStubSkill("adder"), category: "math"}
	other := newStubSkill("other")

	if err := r.Register(withCategory); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(other); err != nil {
		t.Fatal(err)
	}

	found := r.FindByCategory("math")
	if len(found) != 1 || found[0].Name() != "adder" {
		t.Errorf("unexpected result: %v", found)
	}

	// Exact, case-sensitive match.
	if got := r.FindByCategory("Math"); len(got) != 0 {
		t.Errorf("expected case-sensitive category match, got %v", got)
	}
}

type categorySkill struct {
	*stubSkill
	category string
	tags     []string
}

func (c *categorySkill) Category() string { return c.category }
func (c *categorySkill) Tags() []string   { return c.tags }

func TestRegistryFindByTag(t *testing.T) {
	r := NewRegistry()
	tagged := &categorySkill{stubSkill: newStubSkill("tagged"), category: "general", tags: []string{"alpha", "beta"}}
	plain := newStubSkill("plain")

	if err := r.Register(tagged); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(plain); err != nil {
		t.Fatal(err)
	}

	found := r.FindByTag("beta")
	if len(found) != 1 || found[0].Name() != "tagged" {
		t.Errorf("unexpected result: %v", found)
	}
	if got := r.FindByTag("gamma"); len(got) != 0 {
		t.Errorf("expected no match, got %v", got)
	}
}

func TestRegistrySearch(t *testing.T) {
	r := NewRegistry()

	calc := &categorySkill{stubSkill: &stubSkill{name: "calculator", desc: "Performs arithmetic"}, category: "math", tags: []string{"numbers"}}
	text := &stubSkill{name: "text_processor", desc: "Transforms TEXT input"}
	unrelated := &stubSkill{name: "weather", desc: "Forecast lookup"}

	for _, s := range []Skill{calc, text, unrelated} {
		if err := r.Register(s); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		keyword string
		want    []string
	}{
		{"CALC", []string{"calculator"}},          // name, case-insensitive
		{"text", []string{"text_processor"}},      // name and description
		{"numbers", []string{"calculator"}},       // tag
		{"o", []string{"calculator", "text_processor", "weather"}}, // broad substring
		{"nope", nil},
	}

	for _, tc := range cases {
		got := r.Search(tc.keyword)
		if len(got) != len(tc.want) {
			t.Errorf("Search(%q) returned %d skills, want %d", tc.keyword, len(got), len(tc.want))
			continue
		}
		for i, s := range got {
			if s.Name() != tc.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tc.keyword, i, s.Name(), tc.want[i])
			}
		}
	}
}

func TestRegistryAllMetadata(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"one", "two"} {
		if err := r.Register(newStubSkill(name)); err != nil {
			t.Fatal(err)
		}
	}

	metas := r.AllMetadata()
	if len(metas) != 2 {
		t.Fatalf("expected 2 metadata entries, got %d", len(metas))
	}
	if metas[0].Name != "one" || metas[1].Name != "two" {
		t.Errorf("expected listing order, got %v", metas)
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newStubSkill("x")); err != nil {
		t.Fatal(err)
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d skills", r.Len())
	}
	if names := r.Names(); len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}
