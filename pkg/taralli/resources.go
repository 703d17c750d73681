package taralli

import (
	"errors"

	"github.com/BrandonKowalski/taralli/pkg/taralli/i18n"
)

// IconRef is an opaque handle to a rendered icon resource. The engine never
// interprets it; the rendering collaborator supplies and consumes it.
type IconRef string

// ErrResourceNotFound is returned by resolvers for unknown icon or string
// ids. The engine absorbs it into an undefined element or a raw label.
var ErrResourceNotFound = errors.New("taralli: resource not found")

// ResourceResolver resolves icon and string resources by id. Both lookups
// may fail; failure is never fatal to the engine.
type ResourceResolver interface {
	Icon(name string) (IconRef, error)
	String(name string) (string, error)
}

// LocalizedResolver is the default resolver: icons come from an explicit
// registry, strings from the i18n bundle.
type LocalizedResolver struct {
	icons map[string]IconRef
}

func NewLocalizedResolver() *LocalizedResolver {
	return &LocalizedResolver{icons: make(map[string]IconRef)}
}

// RegisterIcon makes an icon resolvable by name.
func (r *LocalizedResolver) RegisterIcon(name string, ref IconRef) {
	r.icons[name] = ref
}

func (r *LocalizedResolver) Icon(name string) (IconRef, error) {
	if ref, ok := r.icons[name]; ok {
		return ref, nil
	}
	return "", ErrResourceNotFound
}

func (r *LocalizedResolver) String(name string) (string, error) {
	return i18n.GetString(name)
}

// noopResolver resolves nothing; it backs engines constructed without a
// resolver so every lookup degrades cleanly.
type noopResolver struct{}

func (noopResolver) Icon(string) (IconRef, error)  { return "", ErrResourceNotFound }
func (noopResolver) String(string) (string, error) { return "", ErrResourceNotFound }
