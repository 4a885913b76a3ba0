package skills

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidName is returned when registering a skill whose name is empty.
var ErrInvalidName = errors.New("skill name must not be empty")

// Registry is an in-memory catalog of skills keyed by unique name. Listing
// follows insertion order. The Registry never mutates the skills it holds,
// and provides no locking: callers embedding it in a concurrent host must
// serialize access themselves.
type Registry struct {
	skills map[string]Skill
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		skills: make(map[string]Skill),
	}
}

// Register inserts a skill under its name. Registering a name that already
// exists replaces the previous skill (last write wins) and keeps its
// position in listing order; the overwrite is logged since it is usually a
// naming collision rather than an intentional upgrade.
func (r *Registry) Register(s Skill) error {
	name := s.Name()
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	if _, exists := r.skills[name]; exists {
		slog.Warn("skill already registered, replacing", "name", name)
	} else {
		r.order = append(r.order, name)
	}
	r.skills[name] = s
	return nil
}

// RegisterFunc constructs a skill via ctor and registers it. A constructor
// failure is reported as a registration error to the caller, never masked
// as a Result.
func (r *Registry) RegisterFunc(ctor func() (Skill, error)) error {
	s, err := ctor()
	if err != nil {
		return fmt.Errorf("construct skill: %w", err)
	}
	return r.Register(s)
}

// Unregister removes the named skill. It reports whether anything was
// removed; a missing name is a no-op, not an error.
func (r *Registry) Unregister(name string) bool {
	if _, ok := r.skills[name]; !ok {
		return false
	}
	delete(r.skills, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the skill with the given name, and whether it exists.
func (r *Registry) Get(name string) (Skill, bool) {
	s, ok := r.skills[name]
	return s, ok
}

// Names returns all registered skill names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.skills)
}

// all returns the registered skills in insertion order.
func (r *Registry) all() []Skill {
	result := make([]Skill, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.skills[name])
	}
	return result
}

// FindByCategory returns the skills whose category equals category exactly.
func (r *Registry) FindByCategory(category string) []Skill {
	var result []Skill
	for _, s := range r.all() {
		if s.Category() == category {
			result = append(result, s)
		}
	}
	return result
}

// FindByTag returns the skills whose tag set contains tag.
func (r *Registry) FindByTag(tag string) []Skill {
	var result []Skill
	for _, s := range r.all() {
		for _, t := range s.Tags() {
			if t == tag {
				result = append(result, s)
				break
			}
		}
	}
	return result
}

// Search returns the skills whose name, description or any tag contains
// keyword, case-insensitively. The scan is linear; catalogs are expected to
// hold at most a few hundred skills.
func (r *Registry) Search(keyword string) []Skill {
	kw := strings.ToLower(keyword)
	var result []Skill
	for _, s := range r.all() {
		if r.matches(s, kw) {
			result = append(result, s)
		}
	}
	return result
}

func (r *Registry) matches(s Skill, kw string) bool {
	if strings.Contains(strings.ToLower(s.Name()), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description()), kw) {
		return true
	}
	for _, t := range s.Tags() {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// AllMetadata returns the metadata of every registered skill, in listing
// order.
func (r *Registry) AllMetadata() []Metadata {
	result := make([]Metadata, 0, len(r.order))
	for _, s := range r.all() {
		result = append(result, Describe(s))
	}
	return result
}

// Clear removes all registered skills.
func (r *Registry) Clear() {
	r.skills = make(map[string]Skill)
	r.order = nil
}
