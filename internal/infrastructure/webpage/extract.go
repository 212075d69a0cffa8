package webpage

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bridgeit/directory/internal/domain/entities"
)

// Extractor reduces a fetched profile page to a content fragment that
// can sit inside the detail view. The selection and removal heuristics
// mirror the authoring convention for profile pages; attribute
// scrubbing is stricter than element removal alone since the fragment
// ends up inline in another page.
type Extractor struct{}

// NewExtractor creates a fragment extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// containerSelectors is the priority order for the embeddable root:
// the dedicated wrapper first, then the usual content containers.
var containerSelectors = []func(*html.Node) bool{
	hasClass("bridgeit-profile"),
	hasClass("post"),
	isElement(atom.Article),
	isElement(atom.Main),
	hasClass("page-content"),
	isElement(atom.Body),
}

// strippedElements are removed wholesale from the fragment.
var strippedElements = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
	atom.Nav:    true,
	atom.Header: true,
	atom.Footer: true,
}

// Extract returns the sanitized inner HTML of the best content
// container, with relative references rewritten against baseHref.
// Unparseable or empty input yields an empty fragment.
func (x *Extractor) Extract(rawHTML, baseHref string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var node *html.Node
	for _, match := range containerSelectors {
		if node = findFirst(doc, match); node != nil {
			break
		}
	}
	if node == nil {
		return ""
	}

	stripElements(node)
	removeFirstHeading(node)
	rewriteReferences(node, baseHref)

	var b strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(b.String())
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.DataAtom == a }
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
		return false
	}
}

func stripElements(n *html.Node) {
	var c *html.Node
	for child := n.FirstChild; child != nil; child = c {
		c = child.NextSibling
		if child.Type == html.ElementNode && strippedElements[child.DataAtom] {
			n.RemoveChild(child)
			continue
		}
		stripElements(child)
	}
}

// removeFirstHeading drops the leading h1 so the fragment's title does
// not duplicate the detail page's own.
func removeFirstHeading(root *html.Node) {
	h1 := findFirst(root, isElement(atom.H1))
	if h1 != nil && h1.Parent != nil {
		h1.Parent.RemoveChild(h1)
	}
}

// rewriteReferences resolves relative img/src and a/href values against
// the profile base, marks external links to open in a new context, and
// drops inline event handlers, style and srcset attributes everywhere.
func rewriteReferences(n *html.Node, baseHref string) {
	if n.Type == html.ElementNode {
		n.Attr = scrubAttrs(n.Attr)
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", baseHref)
		case atom.A:
			rewriteAttr(n, "href", baseHref)
			if entities.IsExternalHref(getAttr(n, "href")) {
				setAttr(n, "target", "_blank")
				setAttr(n, "rel", "noopener")
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteReferences(c, baseHref)
	}
}

func scrubAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, attr := range attrs {
		key := strings.ToLower(attr.Key)
		if strings.HasPrefix(key, "on") || key == "style" || key == "srcset" {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func rewriteAttr(n *html.Node, key, baseHref string) {
	raw := getAttr(n, key)
	if raw == "" {
		return
	}
	if resolved := entities.ResolveRelativeURL(raw, baseHref); resolved != "" {
		setAttr(n, key, resolved)
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
