// file: internals/features/lms/modules/modtype/registry.go
package modtype

import (
	"fmt"
	"sort"
	"sync"
)

// DisplayMeta is the UI metadata for one module type: which editor component
// the builder frontend mounts and how the type is presented in the picker.
type DisplayMeta struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Editor      string `json:"editor"`
}

// Definition is the per-type contract: default payload factory, wire decode
// and the data-level validation rules. One concrete definition per module
// type, registered from its own file's init().
type Definition interface {
	Type() string
	Meta() DisplayMeta
	DefaultData() ModuleData
	DecodeData(raw []byte) (ModuleData, error)
	// ValidateData collects data-payload errors into errs under the "data"
	// prefix. Base module fields are checked by Validate below.
	ValidateData(data ModuleData, errs FieldErrors)
}

var (
	mu          sync.RWMutex
	definitions = make(map[string]Definition)
)

// Register adds a module type definition to the process-wide registry.
// Registration is append-only and happens once per type at package load;
// a duplicate type is a programming error, so it panics.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := definitions[def.Type()]; dup {
		panic(fmt.Sprintf("modtype: duplicate registration for %q", def.Type()))
	}
	definitions[def.Type()] = def
}

// Get returns the definition for a type tag. Callers must treat ok=false as a
// recoverable condition ("Unknown module type"), not a crash.
func Get(typ string) (Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	def, ok := definitions[typ]
	return def, ok
}

// Types returns the registered type tags, sorted for stable output.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(definitions))
	for t := range definitions {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Metas returns display metadata for every registered type, keyed by tag.
// Served to the builder UI so the module picker stays in sync with the server.
func Metas() map[string]DisplayMeta {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]DisplayMeta, len(definitions))
	for t, def := range definitions {
		out[t] = def.Meta()
	}
	return out
}

// DefaultData returns a fresh default payload for the type, used when a user
// adds a new module without supplying data.
func DefaultData(typ string) (ModuleData, error) {
	def, ok := Get(typ)
	if !ok {
		return nil, fmt.Errorf("unknown module type %q", typ)
	}
	return def.DefaultData(), nil
}

// DecodeData unmarshals a raw payload for the given type tag into its
// concrete ModuleData variant.
func DecodeData(typ string, raw []byte) (ModuleData, error) {
	def, ok := Get(typ)
	if !ok {
		return nil, fmt.Errorf("unknown module type %q", typ)
	}
	return def.DecodeData(raw)
}

// Validate checks the base module fields, then delegates payload rules to the
// type's definition. Returns nil when the module is valid. Purely structural:
// no I/O, no referential checks (those belong to the persistence layer).
func Validate(m Module) FieldErrors {
	errs := FieldErrors{}

	if m.ID == "" {
		errs.add("id is required", "id")
	}
	if m.Title == "" {
		errs.add("title is required", "title")
	}
	if m.SectionID == "" {
		errs.add("section_id is required", "section_id")
	}
	if m.Order < 0 {
		errs.add("order must be zero or positive", "order")
	}

	def, ok := Get(m.Type)
	if !ok {
		errs.add(fmt.Sprintf("unknown module type %q", m.Type), "type")
		return errs.OrNil()
	}

	if m.Data == nil {
		errs.add("data is required", "data")
		return errs.OrNil()
	}
	if m.Data.ModuleType() != m.Type {
		errs.add(fmt.Sprintf("data payload is %q, module is %q", m.Data.ModuleType(), m.Type), "data")
		return errs.OrNil()
	}

	def.ValidateData(m.Data, errs)
	return errs.OrNil()
}
