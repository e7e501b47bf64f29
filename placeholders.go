package docgen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-docgen/internal/docxml"
)

// Placeholder delimiters in template text.
const (
	placeholderOpen  = "{{"
	placeholderClose = "}}"
)

// expressionKeywords are template-language words that can appear inside a
// placeholder expression but never name a variable.
var expressionKeywords = map[string]bool{
	"if":    true,
	"elsif": true,
	"else":  true,
	"end":   true,
	"for":   true,
	"in":    true,
	"and":   true,
	"or":    true,
	"not":   true,
	"true":  true,
	"false": true,
	"nil":   true,
}

// identifierRe matches a variable reference, possibly dotted
// (e.g. "employee.name"). Only the root segment names a binding.
var identifierRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z0-9_]+)*`)

// simplePlaceholderRe is the fallback pattern: a bare variable between
// double braces, e.g. "{{ salary }}".
var simplePlaceholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// quotedLiteralRe matches string literals inside an expression so their
// contents are not mistaken for variables.
var quotedLiteralRe = regexp.MustCompile(`"[^"]*"|'[^']*'`)

// extractPlaceholders returns the sorted, deduplicated variable names a
// template package references.
//
// Two strategies compose with first-success semantics: a structured walk
// of the document XML (which merges text runs, so placeholders split
// across runs by an editor are still found), then a raw pattern scan of
// the document part for templates whose XML the walk cannot parse. Only
// when the package itself is unreadable does the call fail.
func extractPlaceholders(pkg []byte) ([]string, error) {
	if doc, err := docxml.Read(pkg); err == nil {
		found := map[string]bool{}
		for _, p := range doc.Paragraphs {
			collectExpressionVariables(p.Text, found)
		}
		return sortedNames(found), nil
	}

	content, err := docxml.DocumentXML(pkg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceholderScan, err)
	}

	found := map[string]bool{}
	for _, m := range simplePlaceholderRe.FindAllStringSubmatch(string(content), -1) {
		found[m[1]] = true
	}
	return sortedNames(found), nil
}

// collectExpressionVariables scans text for {{...}} expressions and adds
// every variable they reference to found. Keywords, function call heads,
// string literals, and dotted tails are not variables.
func collectExpressionVariables(text string, found map[string]bool) {
	for {
		open := strings.Index(text, placeholderOpen)
		if open < 0 {
			return
		}
		rest := text[open+len(placeholderOpen):]
		end := strings.Index(rest, placeholderClose)
		if end < 0 {
			return
		}

		expr := quotedLiteralRe.ReplaceAllString(rest[:end], " ")
		for _, loc := range identifierRe.FindAllStringIndex(expr, -1) {
			ident := expr[loc[0]:loc[1]]
			root := ident
			if dot := strings.IndexByte(root, '.'); dot >= 0 {
				root = root[:dot]
			}
			if expressionKeywords[root] {
				continue
			}
			if isCallHead(expr, loc[1]) {
				continue
			}
			found[root] = true
		}

		text = rest[end+len(placeholderClose):]
	}
}

// isCallHead reports whether the identifier ending at end is immediately
// followed by an opening parenthesis, i.e. is a function name.
func isCallHead(expr string, end int) bool {
	for i := end; i < len(expr); i++ {
		switch expr[i] {
		case ' ', '\t':
			continue
		case '(':
			return true
		default:
			return false
		}
	}
	return false
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
