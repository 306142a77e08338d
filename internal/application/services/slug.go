package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugify folds a file basename to an ASCII, URL-safe token: accents are
// stripped, letters lowercased, anything else collapsed to single dashes.
func slugify(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		default:
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "photo"
	}

	return out
}

// photoFileName builds the on-storage name "<unix-ts>_<slug(basename)><.ext>"
// for an uploaded photo.
func photoFileName(original string, ts time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	return fmt.Sprintf("%d_%s%s", ts.Unix(), slugify(name), strings.ToLower(ext))
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
