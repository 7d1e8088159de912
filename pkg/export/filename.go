package export

import (
	"regexp"
	"strings"
)

const fileSuffix = "-resignation-letter"

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName builds "<name>-resignation-letter.<ext>" where name is lowercased
// and every whitespace run becomes a hyphen.
func FileName(employeeName, ext string) string {
	name := strings.ToLower(whitespaceRun.ReplaceAllString(employeeName, "-"))
	if ext == "" {
		return name + fileSuffix
	}
	return name + fileSuffix + "." + ext
}
