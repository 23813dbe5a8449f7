// Package doctree holds the minimal document tree produced by parsers
// and consumed by the walker. Names of namespaced elements and
// attributes are rendered as `{uri}local`.
package doctree

// Document is a parsed document.
type Document struct {
	Root *Element
}

// Element is one node of a document tree.
type Element struct {
	// Tag is the qualified name of the element.
	Tag string

	// Attrs are the attributes in document order. Namespace declarations
	// are not included.
	Attrs []Attr

	// Children are direct child elements in document order.
	Children []*Element

	// Text is the character data before the first child element, nil if
	// there was none.
	Text *string
}

// Attr is an attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// AttrNames returns the names of attributes in document order.
func (e *Element) AttrNames() []string {
	res := make([]string, len(e.Attrs))
	for i := range e.Attrs {
		res[i] = e.Attrs[i].Name
	}
	return res
}

// ChildTags returns tags of direct children in document order.
func (e *Element) ChildTags() []string {
	res := make([]string, len(e.Children))
	for i := range e.Children {
		res[i] = e.Children[i].Tag
	}
	return res
}

// QName renders a namespace URI and a local name as `{uri}local`, or
// just local when the URI is empty.
func QName(space, local string) string {
	if space == "" {
		return local
	}
	return "{" + space + "}" + local
}
