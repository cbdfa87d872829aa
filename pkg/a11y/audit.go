package a11y

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rule names reported by Audit.
const (
	RuleHTMLLang    = "html-lang"
	RuleImageAlt    = "img-alt"
	RuleLinkOpener  = "link-noopener"
	RuleInputLabel  = "input-label"
	RuleButtonName  = "button-name"
	RuleSingleTitle = "single-h1"
)

// Issue is one accessibility problem found in a document.
type Issue struct {
	Rule    string
	Element string
	Message string
}

func (i Issue) String() string {
	if i.Element == "" {
		return fmt.Sprintf("[%s] %s", i.Rule, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Rule, i.Element, i.Message)
}

// Report collects the issues of one audit run.
type Report struct {
	Issues []Issue
}

// OK reports whether the document passed every rule.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Rules returns the rule of every issue, in document order.
func (r Report) Rules() []string {
	rules := make([]string, 0, len(r.Issues))
	for _, i := range r.Issues {
		rules = append(rules, i.Rule)
	}
	return rules
}

func (r *Report) add(rule string, n *html.Node, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Rule:    rule,
		Element: describe(n),
		Message: fmt.Sprintf(format, args...),
	})
}

// Audit parses an HTML document and checks it against a small set of
// accessibility rules.
func Audit(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse html: %w", err)
	}

	labelled := make(map[string]bool)
	walk(doc, func(n *html.Node) {
		if n.DataAtom == atom.Label {
			if id, ok := attr(n, "for"); ok && id != "" {
				labelled[id] = true
			}
		}
	})

	var report Report
	h1 := 0

	walk(doc, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Html:
			if lang, _ := attr(n, "lang"); strings.TrimSpace(lang) == "" {
				report.add(RuleHTMLLang, n, "document has no language")
			}
		case atom.Img:
			if _, ok := attr(n, "alt"); !ok {
				report.add(RuleImageAlt, n, "image has no alt attribute")
			}
		case atom.A:
			if target, _ := attr(n, "target"); target == "_blank" {
				rel, _ := attr(n, "rel")
				if !hasToken(rel, "noopener") && !hasToken(rel, "noreferrer") {
					report.add(RuleLinkOpener, n, `target="_blank" without rel="noopener"`)
				}
			}
		case atom.Input, atom.Textarea, atom.Select:
			if typ, _ := attr(n, "type"); typ == "hidden" || typ == "submit" || typ == "button" {
				return
			}
			if !hasLabel(n, labelled) {
				report.add(RuleInputLabel, n, "form control has no accessible label")
			}
		case atom.Button:
			if !hasName(n) {
				report.add(RuleButtonName, n, "button has no text or aria-label")
			}
		case atom.H1:
			h1++
		}
	})

	if h1 != 1 {
		report.add(RuleSingleTitle, nil, "document has %d <h1> elements, want exactly 1", h1)
	}

	return report, nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasToken(list, token string) bool {
	for _, f := range strings.Fields(list) {
		if strings.EqualFold(f, token) {
			return true
		}
	}
	return false
}

// hasLabel accepts aria-label, aria-labelledby, <label for> or a wrapping
// <label>. A placeholder is not a label.
func hasLabel(n *html.Node, labelled map[string]bool) bool {
	if v, _ := attr(n, "aria-label"); strings.TrimSpace(v) != "" {
		return true
	}
	if v, _ := attr(n, "aria-labelledby"); strings.TrimSpace(v) != "" {
		return true
	}
	if id, ok := attr(n, "id"); ok && labelled[id] {
		return true
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.DataAtom == atom.Label {
			return true
		}
	}
	return false
}

func hasName(n *html.Node) bool {
	if v, _ := attr(n, "aria-label"); strings.TrimSpace(v) != "" {
		return true
	}
	if v, _ := attr(n, "title"); strings.TrimSpace(v) != "" {
		return true
	}
	return strings.TrimSpace(textContent(n)) != ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			if hidden, _ := attr(n, "aria-hidden"); hidden == "true" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func describe(n *html.Node) string {
	if n == nil {
		return ""
	}
	s := "<" + n.Data
	if id, ok := attr(n, "id"); ok {
		s += ` id="` + id + `"`
	} else if class, ok := attr(n, "class"); ok {
		s += ` class="` + class + `"`
	}
	return s + ">"
}
