package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrBlankCategory = errors.New("category name cannot be blank")

// Category is a normalized product label. Two categories are equal when
// their normalized names match, so values are usable as map keys.
type Category struct {
	name string
}

func (c Category) Name() string { return c.name }

func (c Category) String() string { return c.name }

// CategoryInterner hands out one Category value per normalized name.
// It is owned by the caller that constructs products; there is no
// process-wide cache. Not safe for concurrent use.
type CategoryInterner struct {
	byName map[string]Category
}

func NewCategoryInterner() *CategoryInterner {
	return &CategoryInterner{byName: make(map[string]Category)}
}

// Category interns the given name. Normalization trims surrounding
// whitespace, upper-cases the first rune and lower-cases the rest, so
// "dairy", "DAIRY" and " Dairy " all intern to "Dairy".
func (ci *CategoryInterner) Category(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Category{}, ErrBlankCategory
	}

	normalized := normalizeCategoryName(trimmed)
	if c, ok := ci.byName[normalized]; ok {
		return c, nil
	}

	c := Category{name: normalized}
	ci.byName[normalized] = c
	return c, nil
}

func normalizeCategoryName(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
