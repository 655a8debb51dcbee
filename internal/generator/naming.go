package generator

import (
	"strings"
	"unicode"
)

// Canonicalize replaces every hyphen in a native argument or operation
// name with an underscore.
func Canonicalize(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// UpperCamel converts a native name to an exported Go identifier:
// canonicalize, title-case each underscore or space delimited word,
// then concatenate the words with the separators dropped. A letter
// after a non-letter starts a new word, so "gaussian-blur" becomes
// "GaussianBlur" and "math2" becomes "Math2".
func UpperCamel(name string) string {
	name = Canonicalize(name)
	var b strings.Builder
	prevLetter := false
	for _, r := range name {
		if r == '_' || unicode.IsSpace(r) {
			prevLetter = false
			continue
		}
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// LowerCamel converts a native name to an unexported Go identifier:
// the first underscore-delimited segment is kept as-is and the rest are
// camel-cased, so "jpeg-save-buffer" becomes "jpegSaveBuffer".
func LowerCamel(name string) string {
	name = Canonicalize(name)
	parts := strings.Split(name, "_")
	return parts[0] + UpperCamel(strings.Join(parts[1:], "_"))
}
