package track

import (
	"fmt"
	"strings"
)

// Field is one of the three column categories a track needs.
type Field int

const (
	FieldLatitude Field = iota
	FieldLongitude
	FieldHeading
)

var fieldNames = [...]string{"latitude", "longitude", "heading"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Mapping names the table columns holding each field.
type Mapping struct {
	Latitude  string
	Longitude string
	Heading   string
}

func (m Mapping) get(f Field) string {
	switch f {
	case FieldLatitude:
		return m.Latitude
	case FieldLongitude:
		return m.Longitude
	default:
		return m.Heading
	}
}

func (m *Mapping) set(f Field, col string) {
	switch f {
	case FieldLatitude:
		m.Latitude = col
	case FieldLongitude:
		m.Longitude = col
	default:
		m.Heading = col
	}
}

type rule struct {
	field Field
	match func(name string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// Resolver classifies header names into fields with an ordered rule list.
type Resolver struct {
	Name   string
	labels map[Field]string
	rules  []rule
}

// StrictResolver matches "latitude", "longitude"/"long" and "course".
var StrictResolver = Resolver{
	Name:   "strict",
	labels: map[Field]string{FieldLatitude: "latitude", FieldLongitude: "longitude", FieldHeading: "course"},
	rules: []rule{
		{FieldLatitude, containsAny("latitude")},
		{FieldLongitude, containsAny("longitude", "long")},
		{FieldHeading, containsAny("course")},
	},
}

// PermissiveResolver matches "lat", "lon"/"long" and "head".
var PermissiveResolver = Resolver{
	Name:   "permissive",
	labels: map[Field]string{FieldLatitude: "lat", FieldLongitude: "lon", FieldHeading: "head"},
	rules: []rule{
		{FieldLatitude, containsAny("lat")},
		{FieldLongitude, containsAny("lon", "long")},
		{FieldHeading, containsAny("head")},
	},
}

// Label is the substring this resolver reports for a field.
func (r Resolver) Label(f Field) string {
	if l, ok := r.labels[f]; ok {
		return l
	}
	return f.String()
}

// classify returns the field of the first rule matching a normalised name.
func (r Resolver) classify(name string) (Field, bool) {
	for _, ru := range r.rules {
		if ru.match(name) {
			return ru.field, true
		}
	}
	return 0, false
}

// Match scans the columns in order and returns whatever it could resolve.
// Unresolved fields are left empty.
func (r Resolver) Match(columns []string) Mapping {
	var m Mapping
	for _, col := range columns {
		f, ok := r.classify(strings.ToLower(strings.TrimSpace(col)))
		if !ok || m.get(f) != "" {
			continue
		}
		m.set(f, col)
	}
	return m
}

// Resolve is Match that fails unless all three fields were found.
func (r Resolver) Resolve(columns []string) (Mapping, error) {
	m := r.Match(columns)
	var missing []string
	for _, f := range []Field{FieldLatitude, FieldLongitude, FieldHeading} {
		if m.get(f) == "" {
			missing = append(missing, r.Label(f))
		}
	}
	if len(missing) > 0 {
		return m, &ResolutionError{
			Required:  []string{r.Label(FieldLatitude), r.Label(FieldLongitude), r.Label(FieldHeading)},
			Missing:   missing,
			Available: append([]string(nil), columns...),
		}
	}
	return m, nil
}

// ResolutionError reports the field categories no column matched.
type ResolutionError struct {
	Required  []string
	Missing   []string
	Available []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not find required columns (%s): missing %s; available columns: %q",
		strings.Join(e.Required, ", "), strings.Join(e.Missing, ", "), e.Available)
}
