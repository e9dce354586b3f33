package pubtext

import "strings"

// SectionKind names one logical article section in a cleaned record.
type SectionKind string

// Section kinds, in record order. KindFullText is only emitted when neither
// Results nor Methods could be located.
const (
	KindAbstract SectionKind = "ABS"
	KindResults  SectionKind = "RES"
	KindMethods  SectionKind = "MM"
	KindFullText SectionKind = "FT"
)

// Kinds lists the section kinds in record order.
var kinds = [...]SectionKind{KindAbstract, KindResults, KindMethods, KindFullText}

// Title returns the human-readable section name.
func (k SectionKind) Title() string {
	switch k {
	case KindAbstract:
		return "Abstract"
	case KindResults:
		return "Results"
	case KindMethods:
		return "Methods"
	case KindFullText:
		return "Full text"
	}
	return string(k)
}

// ParseSectionKind returns the kind for a record tag.
// Returns EINVALID for unknown tags.
func ParseSectionKind(tag string) (SectionKind, error) {
	for _, k := range kinds {
		if string(k) == tag {
			return k, nil
		}
	}
	return "", Errorf(EINVALID, "unknown section tag %q", tag)
}

// Block is one named text block of a cleaned record.
type Block struct {
	Kind SectionKind `json:"kind"`
	Text string      `json:"text"`
}

// Record is the cleaned representation of one article: at most one
// normalized text block per section kind.
type Record struct {
	blocks map[SectionKind]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{blocks: make(map[SectionKind]string)}
}

// Set stores the text for a section kind. Whitespace-only text clears the block.
func (r *Record) Set(kind SectionKind, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		delete(r.blocks, kind)
		return
	}
	r.blocks[kind] = text
}

// Text returns the block text for a kind and whether it is populated.
func (r *Record) Text(kind SectionKind) (string, bool) {
	text, ok := r.blocks[kind]
	return text, ok
}

// Blocks returns the populated blocks in record order: Abstract, Results,
// Methods, then Full-text only when Results and Methods are both absent.
func (r *Record) Blocks() []Block {
	var out []Block
	_, hasRes := r.blocks[KindResults]
	_, hasMM := r.blocks[KindMethods]
	for _, k := range kinds {
		if k == KindFullText && (hasRes || hasMM) {
			continue
		}
		if text, ok := r.blocks[k]; ok {
			out = append(out, Block{Kind: k, Text: text})
		}
	}
	return out
}

// Len returns the number of blocks that would be written.
func (r *Record) Len() int {
	return len(r.Blocks())
}
