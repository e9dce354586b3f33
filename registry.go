package pubtext

import "sort"

var _ Resolver = (*Registry)(nil)

// Registry maps ISSNs to journals and names to publishers. It is populated
// at startup and read-only afterwards. Articles from unregistered journals
// are dispatched by detecting the publisher from their bytes, then to the
// fallback publisher.
type Registry struct {
	detector   PublisherDetector
	fallback   Publisher
	publishers map[string]Publisher
	journals   map[string]*Journal
}

// NewRegistry creates a Registry. Either detector or fallback may be nil.
func NewRegistry(detector PublisherDetector, fallback Publisher) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		publishers: make(map[string]Publisher),
		journals:   make(map[string]*Journal),
	}
}

// RegisterPublisher adds a publisher under its name, replacing any
// publisher already registered under that name.
func (r *Registry) RegisterPublisher(p Publisher) {
	r.publishers[p.Name()] = p
}

// Publisher returns the publisher registered under name.
// Returns ENOTFOUND if there is none.
func (r *Registry) Publisher(name string) (Publisher, error) {
	p, ok := r.publishers[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown publisher %q", name)
	}
	return p, nil
}

// Publishers returns the names of all registered publishers, sorted.
func (r *Registry) Publishers() []string {
	names := make([]string, 0, len(r.publishers))
	for name := range r.publishers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a journal. The ISSN is normalized before it is stored.
func (r *Registry) Register(j *Journal) error {
	issn := NormalizeISSN(j.ISSN)
	if issn == "" {
		return Errorf(EINVALID, "journal %q: malformed issn %q", j.Name, j.ISSN)
	}
	if j.Publisher == nil {
		return Errorf(EINVALID, "journal %s: publisher required", issn)
	}
	cp := *j
	cp.ISSN = issn
	cp.Source = SourceRegistry
	r.journals[issn] = &cp
	return nil
}

// Lookup returns the journal registered for issn.
// Returns ENOTFOUND if the ISSN is not registered.
func (r *Registry) Lookup(issn string) (*Journal, error) {
	j, ok := r.journals[NormalizeISSN(issn)]
	if !ok {
		return nil, Errorf(ENOTFOUND, "journal %q not registered", issn)
	}
	return j, nil
}

// Journals returns all registered journals ordered by ISSN.
func (r *Registry) Journals() []*Journal {
	out := make([]*Journal, 0, len(r.journals))
	for _, j := range r.journals {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ISSN < out[k].ISSN })
	return out
}

// Resolve returns the registered journal for the article's ISSN. For an
// unregistered ISSN it returns a journal whose publisher was detected from
// data, or the fallback publisher.
// Returns ENOTFOUND if neither applies.
func (r *Registry) Resolve(article *Article, data []byte) (*Journal, error) {
	if j, err := r.Lookup(article.ISSN); err == nil {
		return j, nil
	}
	j := &Journal{ISSN: NormalizeISSN(article.ISSN), Name: article.Journal}
	if r.detector != nil {
		if p, ok := r.publishers[r.detector.Detect(data)]; ok {
			j.Publisher, j.Source = p, SourceDetected
			return j, nil
		}
	}
	if r.fallback != nil {
		j.Publisher, j.Source = r.fallback, SourceFallback
		return j, nil
	}
	return nil, Errorf(ENOTFOUND, "article %s: no publisher for issn %q", article.PMID, article.ISSN)
}
