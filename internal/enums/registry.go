// Package enums tracks the user-defined enumeration types referenced by
// glue-code parameters so a later pass can resolve their values from the
// declaring sources.
package enums

// Registry collects base directories, imported class names and enumeration
// type names seen while scanning glue code.
type Registry struct {
	baseDirs []string
	includes []string

	// enumerations is kept as a first-seen ordered set.
	enumerations []string
	seen         map[string]bool
}

func New(baseDirs []string) *Registry {
	return &Registry{
		baseDirs: baseDirs,
		seen:     make(map[string]bool),
	}
}

// AddClassInclude records the qualified name from an import declaration.
// Imports tell the resolution pass where an enum type is declared.
func (r *Registry) AddClassInclude(qualifiedName string) {
	r.includes = append(r.includes, qualifiedName)
}

// AddEnumeration records a parameter type that is not a recognized
// primitive. Registering the same type again is a no-op.
func (r *Registry) AddEnumeration(typeName string) {
	if r.seen[typeName] {
		return
	}
	r.seen[typeName] = true
	r.enumerations = append(r.enumerations, typeName)
}

func (r *Registry) BaseDirectories() []string {
	return r.baseDirs
}

func (r *Registry) ClassIncludes() []string {
	return r.includes
}

// Enumerations returns the recorded enum type names in first-seen order.
func (r *Registry) Enumerations() []string {
	return r.enumerations
}
