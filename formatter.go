package pubtext

import (
	"bufio"
	"io"
	"strings"
)

// FormatRecord renders a record in the tagged corpus format, one
// "!~TAG~! text" line per populated block.
func FormatRecord(r *Record) string {
	var b strings.Builder
	for _, block := range r.Blocks() {
		b.WriteString("!~")
		b.WriteString(string(block.Kind))
		b.WriteString("~! ")
		b.WriteString(block.Text)
		b.WriteString("\n")
	}
	return b.String()
}

var htmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// FormatHTML renders a record as a standalone HTML report with one section
// per block. Primer sequences are highlighted; quotes are left unescaped so
// 5' and 3' markers stay intact for HighlightPrimers.
func FormatHTML(title string, r *Record) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(htmlText.Replace(title))
	b.WriteString("</title></head><body>\n")
	if title != "" {
		b.WriteString("<h1>" + htmlText.Replace(title) + "</h1>\n")
	}
	for _, block := range r.Blocks() {
		b.WriteString(`<section class="` + strings.ToLower(string(block.Kind)) + `">`)
		b.WriteString("<h2>" + block.Kind.Title() + "</h2><p>")
		b.WriteString(HighlightPrimers(htmlText.Replace(block.Text)))
		b.WriteString("</p></section>\n")
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// ParseRecord reads a record written by FormatRecord.
// Blank lines are ignored; any other untagged line is EINVALID.
func ParseRecord(rd io.Reader) (*Record, error) {
	rec := NewRecord()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "!~") {
			return nil, Errorf(EINVALID, "line %d: missing tag", n)
		}
		tag, text, ok := strings.Cut(line[2:], "~! ")
		if !ok {
			return nil, Errorf(EINVALID, "line %d: unterminated tag", n)
		}
		kind, err := ParseSectionKind(tag)
		if err != nil {
			return nil, err
		}
		rec.Set(kind, text)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
