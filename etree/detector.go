package etree

import (
	"bytes"

	"github.com/beevik/etree"
	"github.com/fwojciec/pubtext"
)

var _ pubtext.PublisherDetector = (*Detector)(nil)

// Detector recognizes XML article dialects.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns "jats" or "elsevier" for XML articles, and "" for
// anything else, including HTML.
func (d *Detector) Detect(data []byte) string {
	head := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if !bytes.HasPrefix(head, []byte("<?xml")) && !bytes.HasPrefix(head, []byte("<!DOCTYPE article")) &&
		!bytes.HasPrefix(head, []byte("<article")) && !bytes.HasPrefix(head, []byte("<full-text-retrieval-response")) {
		return ""
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		return ""
	}
	root := doc.Root()
	if root == nil {
		return ""
	}
	switch {
	case root.Space == "ja" || doc.FindElement("//ja:article") != nil ||
		doc.FindElement("//ja:converted-article") != nil || doc.FindElement("//ja:simple-article") != nil:
		return "elsevier"
	case doc.FindElement("//article/front") != nil:
		return "jats"
	}
	return ""
}
