package storage

// Registry maps catalog names to catalogs, creating each on first use.
// It replaces a per-name singleton: create one Registry at startup and
// pass it to whatever needs named catalogs.
type Registry struct {
	catalogs map[string]*MemoryCatalog
}

func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*MemoryCatalog)}
}

func (r *Registry) Catalog(name string) *MemoryCatalog {
	if c, ok := r.catalogs[name]; ok {
		return c
	}
	c := NewMemoryCatalog(name)
	r.catalogs[name] = c
	return c
}
