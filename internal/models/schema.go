package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"romamo/ibkr-flex/internal/dateutils"
)

// FieldType is the semantic type of a record attribute. It selects the
// coercer the attribute mapper applies to the raw attribute string.
type FieldType int

const (
	FieldString FieldType = iota
	FieldEnum
	FieldDate
	FieldTime
	FieldDateTime
	FieldBool
	FieldDecimal
	FieldCodeList
)

var fieldTypeNames = [...]string{
	FieldString:   "string",
	FieldEnum:     "enum",
	FieldDate:     "date",
	FieldTime:     "time",
	FieldDateTime: "datetime",
	FieldBool:     "bool",
	FieldDecimal:  "decimal",
	FieldCodeList: "code-list",
}

func (t FieldType) String() string {
	if int(t) >= 0 && int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return "unknown"
}

// Value is one coerced attribute. Only the member matching Type is set; a
// nil member means the attribute was absent or could not be coerced.
type Value struct {
	Type    FieldType
	Str     *string
	Time    *time.Time
	Clock   *dateutils.TimeOfDay
	Bool    *bool
	Decimal *decimal.Decimal
	Codes   []Code
}

// FieldMap holds the coerced attributes of one element keyed by attribute name.
type FieldMap map[string]Value

// FieldTyper is the read side of a record schema, consulted by the mapper.
type FieldTyper interface {
	Name() string
	FieldType(attr string) (FieldType, bool)
}

// Field binds an attribute to a record field of T.
type Field[T any] struct {
	Type FieldType
	set  func(*T, Value)
}

// Schema is the static field-type table of a record type.
type Schema[T any] struct {
	name   string
	fields map[string]Field[T]
}

// NewSchema returns the schema of the record named name.
func NewSchema[T any](name string, fields map[string]Field[T]) *Schema[T] {
	return &Schema[T]{name: name, fields: fields}
}

// Name returns the record name used in errors and logs.
func (s *Schema[T]) Name() string { return s.name }

// FieldType returns the declared type of attr, or false when attr is not
// part of the record.
func (s *Schema[T]) FieldType(attr string) (FieldType, bool) {
	f, ok := s.fields[attr]
	return f.Type, ok
}

// Fields returns the declared attribute names in sorted order.
func (s *Schema[T]) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns a new record populated from m. Declared fields missing from
// m are left nil, and code lists become empty slices.
func (s *Schema[T]) Build(m FieldMap) T {
	var rec T
	for name, f := range s.fields {
		f.set(&rec, m[name])
	}
	return rec
}

// StringField declares a free-text attribute.
func StringField[T any](field func(*T) **string) Field[T] {
	return Field[T]{Type: FieldString, set: func(r *T, v Value) {
		*field(r) = v.Str
	}}
}

// EnumField declares a single-valued enumeration attribute. Values are kept
// verbatim.
func EnumField[T any, E ~string](field func(*T) **E) Field[T] {
	return Field[T]{Type: FieldEnum, set: func(r *T, v Value) {
		if v.Str == nil {
			*field(r) = nil
			return
		}
		e := E(*v.Str)
		*field(r) = &e
	}}
}

// DateField declares a calendar date attribute.
func DateField[T any](field func(*T) **time.Time) Field[T] {
	return Field[T]{Type: FieldDate, set: func(r *T, v Value) {
		*field(r) = v.Time
	}}
}

// TimeField declares a time-of-day attribute.
func TimeField[T any](field func(*T) **dateutils.TimeOfDay) Field[T] {
	return Field[T]{Type: FieldTime, set: func(r *T, v Value) {
		*field(r) = v.Clock
	}}
}

// DateTimeField declares a timestamp attribute.
func DateTimeField[T any](field func(*T) **time.Time) Field[T] {
	return Field[T]{Type: FieldDateTime, set: func(r *T, v Value) {
		*field(r) = v.Time
	}}
}

// BoolField declares a Y/N flag attribute.
func BoolField[T any](field func(*T) **bool) Field[T] {
	return Field[T]{Type: FieldBool, set: func(r *T, v Value) {
		*field(r) = v.Bool
	}}
}

// DecimalField declares a numeric attribute.
func DecimalField[T any](field func(*T) **decimal.Decimal) Field[T] {
	return Field[T]{Type: FieldDecimal, set: func(r *T, v Value) {
		*field(r) = v.Decimal
	}}
}

// CodeListField declares a classification code list attribute.
func CodeListField[T any](field func(*T) *[]Code) Field[T] {
	return Field[T]{Type: FieldCodeList, set: func(r *T, v Value) {
		codes := v.Codes
		if codes == nil {
			codes = []Code{}
		}
		*field(r) = codes
	}}
}
