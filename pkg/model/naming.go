package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Suffix is the extension of model files.
const Suffix = "parmodel.json"

var (
	reNsPrefix = regexp.MustCompile(`^(\{[^}]*\})+`)
	reVersion  = regexp.MustCompile(`\.v(\d+)\.`)
)

// CleanName normalizes a model name for use in file names. Leading
// namespace URIs in braces (for example `{http://example.org/ns}book`)
// are removed and spaces are replaced with underscores.
// CleanName(CleanName(s)) == CleanName(s).
func CleanName(name string) string {
	res := reNsPrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(res, " ", "_")
}

// FileName returns the file name of a model with the given name and
// version: `<clean-name>.v<version>.parmodel.json`.
func FileName(name string, version int) string {
	return fmt.Sprintf("%s.v%d.%s", CleanName(name), version, Suffix)
}

// VersionFromFileName extracts a version number encoded in a model
// file name. If the name contains several `.v<N>.` groups, the last one
// wins. The second value is false if no version is found.
func VersionFromFileName(path string) (int, bool) {
	base := filepath.Base(path)
	matches := reVersion.FindAllStringSubmatch(base, -1)
	if len(matches) == 0 {
		return 0, false
	}
	last := matches[len(matches)-1][1]
	res, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}
	return res, true
}
