package ioxml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/internal/ioxml"
	"github.com/gnames/parhelion/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)
	doc, err := ioxml.Parse(strings.NewReader(
		`<?xml version="1.0"?>
<book id="3" lang="en"><title>Go</title><year>2020</year><note/></book>`,
	))
	require.Nil(t, err)
	root := doc.Root
	assert.Equal("book", root.Tag)
	assert.Equal([]string{"id", "lang"}, root.AttrNames())
	assert.Equal("3", root.Attrs[0].Value)
	assert.Equal([]string{"title", "year", "note"}, root.ChildTags())
	assert.Nil(root.Text)
	require.NotNil(t, root.Children[0].Text)
	assert.Equal("Go", *root.Children[0].Text)
	assert.Nil(root.Children[2].Text)
}

func TestParseText(t *testing.T) {
	tests := []struct {
		msg, xml string
		text     *string
	}{
		{"no text", `<a></a>`, nil},
		{"self closing", `<a/>`, nil},
		{"simple", `<a>hi</a>`, ptr("hi")},
		{"before child", `<a>pre<b/>post</a>`, ptr("pre")},
		{"whitespace", "<a>\n  <b/>\n</a>", ptr("\n  ")},
		{"cdata", `<a><![CDATA[x<y]]></a>`, ptr("x<y")},
		{"entity", `<a>a &amp; b</a>`, ptr("a & b")},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			doc, err := ioxml.Parse(strings.NewReader(v.xml))
			require.Nil(t, err)
			assert.Equal(t, v.text, doc.Root.Text)
		})
	}
}

func TestParseNamespaces(t *testing.T) {
	assert := assert.New(t)
	doc, err := ioxml.Parse(strings.NewReader(
		`<b:book xmlns:b="http://example.org/b" xmlns="http://example.org/d" b:id="1" plain="x">
  <title>T</title>
</b:book>`,
	))
	require.Nil(t, err)
	root := doc.Root
	assert.Equal("{http://example.org/b}book", root.Tag)
	assert.Equal([]string{"{http://example.org/b}id", "plain"}, root.AttrNames())
	assert.Equal("{http://example.org/d}title", root.Children[0].Tag)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		msg, xml string
	}{
		{"empty", ""},
		{"unclosed", "<a><b></a>"},
		{"truncated", "<a><b>"},
		{"text outside", "junk<a/>"},
		{"two roots", "<a/><b/>"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := ioxml.Parse(strings.NewReader(v.xml))
			require.NotNil(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.ParseError, gnErr.Code)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.xml")
	err := os.WriteFile(path, []byte(`<a x="1"/>`), 0644)
	require.Nil(t, err)

	doc, err := ioxml.ParseFile(path)
	require.Nil(t, err)
	assert.Equal(t, "a", doc.Root.Tag)

	_, err = ioxml.ParseFile(filepath.Join(dir, "missing.xml"))
	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)

	bad := filepath.Join(dir, "bad.xml")
	err = os.WriteFile(bad, []byte(`<a>`), 0644)
	require.Nil(t, err)
	_, err = ioxml.ParseFile(bad)
	require.NotNil(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ParseError, gnErr.Code)
}

func ptr(s string) *string {
	return &s
}
