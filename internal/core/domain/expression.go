package domain

import (
	"encoding/binary"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Expression is an immutable node of a property expression tree.
//
// The set of node kinds is closed: Nil, Bool, Number, String, Array, Object,
// Typed, Reference and MatrixValue.
type Expression interface {
	String() string
	expression()
}

// Nil is the empty expression.
type Nil struct{}

// Bool is a boolean literal.
type Bool bool

// Number is a numeric literal.
type Number float64

// String is a string literal.
type String string

// Array is an ordered sequence of expressions.
type Array []Expression

// Object is a mapping from field names to expressions.
type Object map[string]Expression

// Typed is a composite node: a type tag plus an opaque payload.
type Typed struct {
	Tag  string
	Data Expression
}

// Reference is a dependency reference to another entity's property.
type Reference struct {
	Ref NamedPropRef
}

// MatrixValue is a resolved matrix literal.
type MatrixValue Matrix

func (Nil) expression()         {}
func (Bool) expression()        {}
func (Number) expression()      {}
func (String) expression()      {}
func (Array) expression()       {}
func (Object) expression()      {}
func (Typed) expression()       {}
func (Reference) expression()   {}
func (MatrixValue) expression() {}

// NewTyped builds a typed node.
func NewTyped(tag string, data Expression) Typed {
	return Typed{Tag: tag, Data: data}
}

// NewReference builds a dependency reference to selector.key.
func NewReference(selector EntitySelector, key string) Reference {
	return Reference{Ref: NamedPropRef{Entity: selector, Key: key}}
}

func (Nil) String() string { return "nil" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

func (s String) String() string { return strconv.Quote(string(s)) }

func (a Array) String() string {
	if len(a) == 0 {
		return "[]"
	}
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = exprString(e)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func (o Object) String() string {
	if len(o) == 0 {
		return "{}"
	}
	keys := sortedKeys(o)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + exprString(o[k])
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (t Typed) String() string { return t.Tag + " " + exprString(t.Data) }

func (r Reference) String() string { return "@" + r.Ref.String() }

func (m MatrixValue) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return "matrix [ " + strings.Join(parts, ", ") + " ]"
}

// Matrix returns the matrix held by the value.
func (m MatrixValue) Matrix() Matrix { return Matrix(m) }

func exprString(e Expression) string {
	if e == nil {
		return Nil{}.String()
	}
	return e.String()
}

func sortedKeys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a deep copy of the expression tree.
func Clone(e Expression) Expression {
	switch v := e.(type) {
	case Array:
		out := make(Array, len(v))
		for i, item := range v {
			out[i] = Clone(item)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for k, item := range v {
			out[k] = Clone(item)
		}
		return out
	case Typed:
		return Typed{Tag: v.Tag, Data: Clone(v.Data)}
	default:
		return e
	}
}

// Node kind markers for the canonical encoding.
const (
	fpNil byte = iota
	fpBool
	fpNumber
	fpString
	fpArray
	fpObject
	fpTyped
	fpReference
	fpMatrix
)

// Fingerprint returns a stable 64-bit hash of the expression tree.
// Structurally equal trees have equal fingerprints.
func Fingerprint(e Expression) uint64 {
	d := xxhash.New()
	writeCanonical(d, e)
	return d.Sum64()
}

func writeCanonical(d *xxhash.Digest, e Expression) {
	var buf [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(s)
	}

	switch v := e.(type) {
	case nil, Nil:
		_, _ = d.Write([]byte{fpNil})
	case Bool:
		b := byte(0)
		if v {
			b = 1
		}
		_, _ = d.Write([]byte{fpBool, b})
	case Number:
		_, _ = d.Write([]byte{fpNumber})
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
		_, _ = d.Write(buf[:])
	case String:
		_, _ = d.Write([]byte{fpString})
		writeString(string(v))
	case Array:
		_, _ = d.Write([]byte{fpArray})
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v)))
		_, _ = d.Write(buf[:])
		for _, item := range v {
			writeCanonical(d, item)
		}
	case Object:
		_, _ = d.Write([]byte{fpObject})
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v)))
		_, _ = d.Write(buf[:])
		for _, k := range sortedKeys(v) {
			writeString(k)
			writeCanonical(d, v[k])
		}
	case Typed:
		_, _ = d.Write([]byte{fpTyped})
		writeString(v.Tag)
		writeCanonical(d, v.Data)
	case Reference:
		_, _ = d.Write([]byte{fpReference})
		writeString(string(v.Ref.Entity))
		writeString(v.Ref.Key)
	case MatrixValue:
		_, _ = d.Write([]byte{fpMatrix})
		for _, f := range v {
			binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(f))
			_, _ = d.Write(buf[:4])
		}
	}
}
