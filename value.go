// Package jsonext provides small helpers around JSON scalar values and Go
// type reflection.
package jsonext

import (
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Kind is the kind of a JSON scalar node.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "null"
	}
}

// Node is an immutable JSON scalar value holding either a string, an integer
// number or null.
// The zero value is the null node. Nodes are comparable: two nodes holding the
// same kind and value are equal with ==.
type Node struct {
	kind Kind
	text string
	num  int64
}

var (
	_ json.Marshaler   = Node{}
	_ json.Unmarshaler = (*Node)(nil)
)

// Null returns the null node.
func Null() Node {
	return Node{}
}

// Text returns a string node holding s verbatim.
func Text(s string) Node {
	return Node{kind: KindString, text: s}
}

// Int returns a number node holding n.
func Int(n int64) Node {
	return Node{kind: KindNumber, num: n}
}

// OptionalInt returns the null node when v is nil, and Int(*v) otherwise.
func OptionalInt(v *int64) Node {
	if v == nil {
		return Null()
	}
	return Int(*v)
}

// Kind returns the kind of the node.
func (n Node) Kind() Kind { return n.kind }

// IsNull reports whether n is the null node.
func (n Node) IsNull() bool { return n.kind == KindNull }

// Text returns the string held by n and whether n is a string node.
func (n Node) Text() (string, bool) {
	return n.text, n.kind == KindString
}

// Int returns the number held by n and whether n is a number node.
func (n Node) Int() (int64, bool) {
	return n.num, n.kind == KindNumber
}

// String implements the fmt.Stringer interface.
func (n Node) String() string {
	switch n.kind {
	case KindString:
		return strconv.Quote(n.text)
	case KindNumber:
		return strconv.FormatInt(n.num, 10)
	default:
		return "null"
	}
}

// MarshalJSON implements the json.Marshaler interface.
// Invalid UTF-8 in string nodes is encoded as the replacement character.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case KindString:
		return json.Marshal(n.text, jsontext.AllowInvalidUTF8(true))
	case KindNumber:
		return json.Marshal(n.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Only null, strings and integers fitting in an int64 are accepted.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v jsontext.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return newError("decode json node", err)
	}

	switch k := v.Kind(); k {
	case 'n':
		*n = Null()
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return newError("decode json string", err)
		}
		*n = Text(s)
	case '0':
		var i int64
		if err := json.Unmarshal(v, &i); err != nil {
			return newError("decode json number", err)
		}
		*n = Int(i)
	default:
		return newError("decode json node", fmt.Errorf("%w: %v", ErrUnsupportedKind, k))
	}
	return nil
}
