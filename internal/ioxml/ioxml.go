// Package ioxml converts XML text into a doctree.Document.
package ioxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/gnames/parhelion/pkg/doctree"
)

// node is an element under construction.
type node struct {
	elem *doctree.Element
	text strings.Builder
	// hasText is true if character data arrived before the first child.
	hasText bool
}

// ParseFile reads and parses an XML document from a file. The file is
// closed before the function returns.
func ParseFile(path string) (*doctree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	res, err := parse(f)
	if err != nil {
		return nil, ParseError(path, err)
	}
	return res, nil
}

// Parse builds a document tree from XML input.
func Parse(r io.Reader) (*doctree.Document, error) {
	res, err := parse(r)
	if err != nil {
		return nil, ParseError("", err)
	}
	return res, nil
}

func parse(r io.Reader) (*doctree.Document, error) {
	decoder := xml.NewDecoder(r)

	var stack []*node
	var root *doctree.Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf(
					"unexpected element %s after document end", t.Name.Local,
				)
			}
			n := &node{elem: &doctree.Element{
				Tag:   doctree.QName(t.Name.Space, t.Name.Local),
				Attrs: convertAttrs(t.Attr),
			}}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if len(parent.elem.Children) == 0 {
					parent.closeText()
				}
				parent.elem.Children = append(parent.elem.Children, n.elem)
			} else {
				root = n.elem
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 0 {
				last := stack[len(stack)-1]
				if len(last.elem.Children) == 0 {
					last.closeText()
				}
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, errors.New("unexpected character data outside root element")
				}
				continue
			}
			last := stack[len(stack)-1]
			if len(last.elem.Children) == 0 {
				last.text.Write(t)
				last.hasText = true
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	if !rootClosed {
		return nil, io.ErrUnexpectedEOF
	}

	return &doctree.Document{Root: root}, nil
}

// closeText stores text collected before the first child.
func (n *node) closeText() {
	if !n.hasText || n.elem.Text != nil {
		return
	}
	txt := n.text.String()
	n.elem.Text = &txt
}

// convertAttrs renders attribute names as qualified names and drops
// namespace declarations.
func convertAttrs(attrs []xml.Attr) []doctree.Attr {
	if len(attrs) == 0 {
		return nil
	}
	res := make([]doctree.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		res = append(res, doctree.Attr{
			Name:  doctree.QName(a.Name.Space, a.Name.Local),
			Value: a.Value,
		})
	}
	return res
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
