package tenant

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugSeparator = "-"
	fallbackSlug  = "tenant"

	// maxSlugAttempts bounds the suffix search; reaching it means the
	// exists check is broken rather than the namespace being full.
	maxSlugAttempts = 10000
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	ErrSlugExhausted = errors.New("could not find a free slug")
)

// NormalizeSlug lowercases name, folds accented letters to ASCII, collapses
// every run of other characters into one separator and trims separators from
// both ends. "Smith & Co." becomes "smith-co".
func NormalizeSlug(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	slug := nonAlnum.ReplaceAllString(strings.ToLower(folded), slugSeparator)
	slug = strings.Trim(slug, slugSeparator)
	if slug == "" {
		return fallbackSlug
	}
	return slug
}

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// ResolveUniqueSlug returns candidate if it is free, otherwise the first free
// of candidate-1, candidate-2, ... The storage unique index remains the
// authority; this only makes collisions unlikely.
func ResolveUniqueSlug(ctx context.Context, candidate string, exists ExistsFunc) (string, error) {
	slug := candidate
	for n := 1; n <= maxSlugAttempts; n++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = candidate + slugSeparator + strconv.Itoa(n)
	}
	return "", ErrSlugExhausted
}
