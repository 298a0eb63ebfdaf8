package cli

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/routecli/cli/pkg/suggest"
)

// Kind identifies the value type a flag carries. The set is closed: every kind
// has a parser and a renderer, enforced by exhaustive switches in this file.
type Kind int

const (
	KindBool Kind = iota + 1
	KindInt
	KindFloat
	KindString
	KindIntList
	KindFloatList
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIntList:
		return "int list"
	case KindFloatList:
		return "float list"
	case KindStringList:
		return "string list"
	}
	return "unknown"
}

// listDelimiter separates the elements of list-kinded flag values.
const listDelimiter = ","

// Flag is a named, typed, defaultable value parsed from command-line tokens. The
// current value always matches the declared kind. Construct flags with [Bool],
// [Int], [Float], [String], [IntList], [FloatList] or [StringList].
type Flag struct {
	name        string
	kind        Kind
	def         any
	value       any
	description string
}

func Bool(name string, value bool, description string) Flag {
	return Flag{name: name, kind: KindBool, def: value, value: value, description: description}
}

func Int(name string, value int, description string) Flag {
	return Flag{name: name, kind: KindInt, def: value, value: value, description: description}
}

func Float(name string, value float64, description string) Flag {
	return Flag{name: name, kind: KindFloat, def: value, value: value, description: description}
}

func String(name, value, description string) Flag {
	return Flag{name: name, kind: KindString, def: value, value: value, description: description}
}

func IntList(name string, value []int, description string) Flag {
	return Flag{name: name, kind: KindIntList, def: value, value: value, description: description}
}

func FloatList(name string, value []float64, description string) Flag {
	return Flag{name: name, kind: KindFloatList, def: value, value: value, description: description}
}

func StringList(name string, value []string, description string) Flag {
	return Flag{name: name, kind: KindStringList, def: value, value: value, description: description}
}

// Name returns the flag's name as it appears on the command line, without the
// "--" prefix.
func (f Flag) Name() string { return f.name }

func (f Flag) Kind() Kind { return f.kind }

func (f Flag) Description() string { return f.description }

// Flags is a registry of flag definitions keyed by name.
type Flags map[string]Flag

// NewFlags builds a registry from a list of definitions. Duplicate names are
// allowed and the last definition wins.
func NewFlags(defs ...Flag) Flags {
	fs := make(Flags, len(defs))
	for _, f := range defs {
		fs[f.name] = f
	}
	return fs
}

// merge returns the right-biased union of the two registries: every flag in
// overlay replaces the same-named flag in fs, flags unique to fs are kept.
func (fs Flags) merge(overlay Flags) Flags {
	merged := make(Flags, len(fs)+len(overlay))
	maps.Copy(merged, fs)
	maps.Copy(merged, overlay)
	return merged
}

// parseAll folds the flag tokens into a copy of the registry and returns it. On
// the first bad token the error is returned instead and the receiver is left
// untouched, so callers never observe a partially applied registry.
func (fs Flags) parseAll(tokens []string) (Flags, error) {
	parsed := maps.Clone(fs)
	for _, token := range tokens {
		if err := parsed.parseOne(token); err != nil {
			return nil, err
		}
	}
	return parsed, nil
}

// parseOne applies a single --name=value token to the registry. A bool flag
// given without a value is a switch and parses as true; every other kind
// requires an inline value.
func (fs Flags) parseOne(token string) error {
	body := strings.TrimPrefix(token, flagPrefix)
	name, raw, hasValue := strings.Cut(body, "=")
	f, ok := fs[name]
	if !ok {
		return &UnknownFlagError{
			Name:        name,
			Suggestions: suggest.Closest(name, slices.Collect(maps.Keys(fs)), 3),
		}
	}
	if f.kind == KindBool && !hasValue {
		f.value = true
		fs[name] = f
		return nil
	}
	if !hasValue {
		return &InvalidFlagValueError{Name: name, Kind: f.kind}
	}
	value, err := parseValue(f.kind, name, raw)
	if err != nil {
		return err
	}
	f.value = value
	fs[name] = f
	return nil
}

// parseValue coerces a raw value string per kind. List kinds coerce every
// element and fail on the first bad one.
func parseValue(kind Kind, name, raw string) (any, error) {
	badValue := func() error {
		return &InvalidFlagValueError{Name: name, Raw: raw, Kind: kind}
	}
	switch kind {
	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, badValue()
		}
		return v, nil
	case KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, badValue()
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, badValue()
		}
		return v, nil
	case KindString:
		return raw, nil
	case KindIntList:
		parts := strings.Split(raw, listDelimiter)
		values := make([]int, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, badValue()
			}
			values = append(values, v)
		}
		return values, nil
	case KindFloatList:
		parts := strings.Split(raw, listDelimiter)
		values := make([]float64, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, badValue()
			}
			values = append(values, v)
		}
		return values, nil
	case KindStringList:
		return strings.Split(raw, listDelimiter), nil
	}
	return nil, badValue()
}

// formatValue renders a kind-typed value for help output.
func formatValue(kind Kind, value any) string {
	switch kind {
	case KindBool:
		return strconv.FormatBool(value.(bool))
	case KindInt:
		return strconv.Itoa(value.(int))
	case KindFloat:
		return strconv.FormatFloat(value.(float64), 'g', -1, 64)
	case KindString:
		return value.(string)
	case KindIntList:
		elems := value.([]int)
		parts := make([]string, 0, len(elems))
		for _, v := range elems {
			parts = append(parts, strconv.Itoa(v))
		}
		return strings.Join(parts, listDelimiter)
	case KindFloatList:
		elems := value.([]float64)
		parts := make([]string, 0, len(elems))
		for _, v := range elems {
			parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
		}
		return strings.Join(parts, listDelimiter)
	case KindStringList:
		return strings.Join(value.([]string), listDelimiter)
	}
	return ""
}
