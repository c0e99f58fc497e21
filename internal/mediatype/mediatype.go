// Package mediatype resolves user input to one of the canonical album formats.
package mediatype

import (
	"fmt"
	"strings"
)

// Type is a canonical media type tag as stored in the catalogue.
type Type string

const (
	CD       Type = "cd"
	Vinyl    Type = "vinyl"
	Digital  Type = "digital"
	Cassette Type = "cassette"
)

var all = []Type{CD, Vinyl, Digital, Cassette}

// synonyms maps case-folded shortcuts to their canonical tag.
var synonyms = map[string]Type{
	"disk": CD,
	"vin":  Vinyl,
	"dig":  Digital,
	"digi": Digital,
	"cas":  Cassette,
	"cass": Cassette,
	"tape": Cassette,
	"mc":   Cassette,
}

// UnknownError is returned by Parse for values outside the known set.
type UnknownError struct {
	Value string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("\"%s\" is an unknown media type.", e.Value)
}

// Parse case-folds s and resolves it to a canonical Type.
func Parse(s string) (Type, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if t, ok := synonyms[v]; ok {
		return t, nil
	}
	t := Type(v)
	if !t.Valid() {
		return "", &UnknownError{Value: v}
	}
	return t, nil
}

// Valid reports whether t is one of the canonical tags.
func (t Type) Valid() bool {
	for _, c := range all {
		if t == c {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
