package mock

import "github.com/fwojciec/pubtext"

var (
	_ pubtext.Locator         = (*Locator)(nil)
	_ pubtext.FullTextLocator = (*FullTextLocator)(nil)
	_ pubtext.XrefLocator     = (*FullTextLocator)(nil)
)

// Fragment is a mock pubtext.Fragment holding paragraph strings.
type Fragment []string

func (f Fragment) Len() int { return len(f) }

// Locator is a mock implementation of pubtext.Locator.
type Locator struct {
	AbstractFn func() pubtext.Fragment
	ResultsFn  func() pubtext.Fragment
	MethodsFn  func() pubtext.Fragment
	TitleFn    func() string
	StringsFn  func(f pubtext.Fragment) []string
}

func (l *Locator) Abstract() pubtext.Fragment {
	return l.AbstractFn()
}

func (l *Locator) Results() pubtext.Fragment {
	return l.ResultsFn()
}

func (l *Locator) Methods() pubtext.Fragment {
	return l.MethodsFn()
}

func (l *Locator) Title() string {
	return l.TitleFn()
}

func (l *Locator) Strings(f pubtext.Fragment) []string {
	return l.StringsFn(f)
}

// FullTextLocator is a mock Locator that also implements the optional
// full-text and cross-reference capabilities.
type FullTextLocator struct {
	Locator
	FullTextFn func() pubtext.Fragment
	XrefsFn    func() []pubtext.Xref
}

func (l *FullTextLocator) FullText() pubtext.Fragment {
	return l.FullTextFn()
}

func (l *FullTextLocator) Xrefs() []pubtext.Xref {
	return l.XrefsFn()
}
