package pubtext

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)

// CollapseWhitespace replaces every whitespace run, including newlines and
// non-breaking spaces, with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Numbers and their surroundings. RE2 has no lookaround, so boundary
// characters are captured and written back by every rule.
const (
	numLead  = `(^|[^\p{L}\p{N}_.])`
	numTrail = `($|[^\p{L}\p{N}_])`
	number   = `\d+(?:[.,]\d+)?`
	numRange = number + `(?:\s?(?:±|\+/-|-|–|to)\s?` + number + `)?`
)

// units are matched longest-first so "mg/ml" is not read as "mg".
var units = []struct {
	token   string
	pattern string
}{
	{"°C", `[°º]\s?C`},
	{"μg/ml", `[μµ]g/m[lL]`},
	{"mg/ml", `mg/m[lL]`},
	{"mg/l", `mg/[lL]`},
	{"g/l", `g/[lL]`},
	{"μM", `[μµ]M`},
	{"mM", `mM`},
	{"nM", `nM`},
	{"pM", `pM`},
	{"μl", `[μµ][lL]`},
	{"ml", `m[lL]`},
	{"μg", `[μµ]g`},
	{"mg", `mg`},
	{"ng", `ng`},
	{"kDa", `kDa`},
	{"bp", `bp`},
	{"rpm", `rpm`},
	{"×g", `[×x]\s?g`},
	{"%", `%`},
	{"h", `(?:hours?|hrs?|h)`},
	{"min", `(?:minutes?|mins?)`},
	{"s", `(?:seconds?|sec|s)`},
	{"days", `days?`},
}

type rewriteRule struct {
	re   *regexp.Regexp
	repl string
}

// apply rewrites s until the rule no longer matches. Adjacent matches can
// share a boundary character, which a single pass would skip.
func (r rewriteRule) apply(s string) string {
	for {
		out := r.re.ReplaceAllString(s, r.repl)
		if out == s {
			return out
		}
		s = out
	}
}

var numberRules = buildNumberRules()

func buildNumberRules() []rewriteRule {
	var rules []rewriteRule

	// 1. number-plus-unit expressions
	for _, u := range units {
		rules = append(rules, rewriteRule{
			re:   regexp.MustCompile(numLead + numRange + `\s?(?:` + u.pattern + `)` + numTrail),
			repl: "${1}NUMBER_" + u.token + "${2}",
		})
	}

	return append(rules,
		// 2. pH values
		rewriteRule{
			re:   regexp.MustCompile(`(^|[^\p{L}\p{N}_])pH\s?=?\s?` + number),
			repl: "${1}NUMBER_pH",
		},
		// 3. float and mean±sd percentages not caught by the unit pass
		rewriteRule{
			re:   regexp.MustCompile(`\d+(?:\.\d+)?(?:\s?±\s?\d+(?:\.\d+)?)?\s?%`),
			repl: "NUMBER_%",
		},
		// 4. scientific notation; the exponent is set off from 10 by a
		// caret, a sign or a space so "2 x 100" stays two integers
		rewriteRule{
			re:   regexp.MustCompile(numLead + number + `\s?[×xX*]\s?10(?:\s?(?:\^|\*\*)\s?[-−–+]?|\s?[-−–+]|\s)\s?\d+` + numTrail),
			repl: "${1}EXPNUM${2}",
		},
		rewriteRule{
			re:   regexp.MustCompile(numLead + `\d+(?:\.\d+)?[eE][-−+]?\d+` + numTrail),
			repl: "${1}EXPNUM${2}",
		},
		// 5. bare floats, whitespace-delimited so "ncb-1.5" survives
		rewriteRule{
			re:   regexp.MustCompile(`(^|\s)[-+−]?\d+[.,]\d+(\s|$)`),
			repl: "${1}FLOAT${2}",
		},
		// 6. bare integers, same guard
		rewriteRule{
			re:   regexp.MustCompile(`(^|\s)[-+−]?\d+(\s|$)`),
			repl: "${1}INT${2}",
		},
	)
}

// NormalizeNumbers replaces numeric literals and measurements with
// canonical tokens: NUMBER_<unit>, NUMBER_pH, NUMBER_%, EXPNUM, FLOAT and
// INT. Rules run in that order. Every replacement removes digits and no
// token contains one, so the pass is repeated until the text is stable,
// which makes NormalizeNumbers idempotent.
func NormalizeNumbers(s string) string {
	for {
		out := s
		for _, r := range numberRules {
			out = r.apply(out)
		}
		if out == s {
			return out
		}
		s = out
	}
}

var primer = regexp.MustCompile(`(^|[^\p{L}\p{N}])((?:5['′’]?\s?[-–—]\s?)?[ACGT]{7,}(?:\s?[-–—]\s?3['′’]?)?)($|[^\p{L}\p{N}])`)

// HighlightPrimers wraps nucleotide primer sequences (runs of at least
// seven A/C/G/T, optionally flanked by 5'- and -3' markers) in
// <span class="primer"> for HTML reports. The input is not escaped; it is
// meant for text that has already been through NormalizeNumbers.
func HighlightPrimers(s string) string {
	return primer.ReplaceAllString(s, `${1}<span class="primer">${2}</span>${3}`)
}
