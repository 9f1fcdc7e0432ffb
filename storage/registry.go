package storage

import "sort"

// Registry resolves adapter keywords to concrete backends. Lookup is pure;
// registration happens before the pipeline is assembled.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns a registry holding the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

// Register adds an adapter under its keyword, replacing any previous adapter
// with the same keyword.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Keyword()] = a
}

// Resolve returns the adapter for the given keyword. An empty keyword
// resolves the process default. Returns UnknownAdapterError when the keyword
// has no registered backend.
func (r *Registry) Resolve(keyword string) (Adapter, error) {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	a, ok := r.adapters[keyword]
	if !ok {
		return nil, UnknownAdapterError{Keyword: keyword}
	}
	return a, nil
}

// Keywords returns the registered keywords in sorted order.
func (r *Registry) Keywords() []string {
	var keywords []string
	for k := range r.adapters {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
