package typeloader

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/internal/match"
)

// ErrTypeNotFound is returned when a name cannot be resolved to a type.
var ErrTypeNotFound = errors.New("type not found")

// maxSuggestions caps the "did you mean" hint of an unknown name.
const maxSuggestions = 3

// Loader resolves a type name to a type handle.
type Loader interface {
	Load(name string) (reflect.Type, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(name string) (reflect.Type, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) (reflect.Type, error) {
	return f(name)
}

// Registry is a Loader backed by explicitly registered types.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry creates a registry pre-seeded with the predeclared types,
// error, time.Time and time.Duration.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]reflect.Type)}

	r.Register(
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[complex64](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[error](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[time.Duration](),
	)

	r.types["byte"] = reflect.TypeFor[byte]()
	r.types["rune"] = reflect.TypeFor[rune]()
	r.types["any"] = reflect.TypeFor[any]()

	return r
}

// Register adds types under their canonical names. Nil entries are skipped.
func (r *Registry) Register(types ...reflect.Type) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range types {
		if t == nil {
			continue
		}

		r.types[NameOf(t)] = t
	}

	return r
}

// Register adds T to the registry.
func Register[T any](r *Registry) *Registry {
	return r.Register(reflect.TypeFor[T]())
}

// Names returns the canonical names of all registered types, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Load resolves name to a registered type. Supported forms:
//   - canonical: "github.com/acme/store.Order"
//   - package suffix: "store.Order", "acme/store.Order"
//   - bare name: "Order" (only when exactly one registered type matches)
//   - composites of the above: "*store.Order", "[]store.Order"
func (r *Registry) Load(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(ErrTypeNotFound, "empty type name")
	}

	switch {
	case strings.HasPrefix(name, "*"):
		elem, err := r.Load(name[1:])
		if err != nil {
			return nil, err
		}

		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(name, "[]"):
		elem, err := r.Load(name[2:])
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(elem), nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.types[name]; ok {
		return t, nil
	}

	matches := r.match(name)

	switch len(matches) {
	case 0:
		if hints := match.Suggest(name, r.namesLocked(), maxSuggestions); len(hints) > 0 {
			return nil, errors.WithHintf(errors.Wrapf(ErrTypeNotFound, "%q", name),
				"did you mean %s?", strings.Join(hints, ", "))
		}

		return nil, errors.Wrapf(ErrTypeNotFound, "%q", name)
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, len(matches))
		for i, t := range matches {
			candidates[i] = NameOf(t)
		}

		slices.Sort(candidates)

		return nil, errors.Wrapf(ErrTypeNotFound, "%q is ambiguous, candidates: %s",
			name, strings.Join(candidates, ", "))
	}
}

// match finds registered types by package suffix or bare name.
// Caller must hold the read lock.
func (r *Registry) match(name string) []reflect.Type {
	pkg, typeName := "", name
	if lastDot := strings.LastIndex(name, "."); lastDot >= 0 {
		pkg, typeName = name[:lastDot], name[lastDot+1:]
		if pkg == "" || typeName == "" {
			return nil
		}
	}

	var matches []reflect.Type

	for _, t := range r.types {
		if t.Name() != typeName || slices.Contains(matches, t) {
			continue
		}

		if pkg == "" || t.PkgPath() == pkg || strings.HasSuffix(t.PkgPath(), "/"+pkg) {
			matches = append(matches, t)
		}
	}

	return matches
}

// NameOf returns the canonical name of t: the full package path plus type
// name for named types, and the usual Go spelling for pointers, slices and
// unnamed types. NameOf(nil) is "".
func NameOf(t reflect.Type) string {
	if t == nil {
		return ""
	}

	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}

		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + NameOf(t.Elem())
	case reflect.Slice:
		return "[]" + NameOf(t.Elem())
	default:
		return t.String()
	}
}
