package tree

import (
	"strconv"
	"strings"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	Text string
	Bool bool
	Int  int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntType,
		Int:  v,
	}
}

// FromReal returns a real number node holding text verbatim. The text is not
// validated.
func FromReal(text string) *Node {
	return &Node{
		Type: RealType,
		Text: text,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type: StringType,
		Text: v,
	}
}

// NewArray returns an empty array with room for n elements. A negative n
// means the length is unknown.
func NewArray(n int) *Node {
	res := &Node{Type: ArrayType}
	if n > 0 {
		res.Values = make([]*Node, 0, n)
	}
	return res
}

// NewHash returns an empty hash with room for n pairs. A negative n means the
// length is unknown.
func NewHash(n int) *Node {
	res := &Node{Type: HashType}
	if n > 0 {
		res.Fields = make([]*Node, 0, n)
		res.Values = make([]*Node, 0, n)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := NewArray(len(ySlice))
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewHash(len(kvs))
	for i := range kvs {
		res.Insert(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Singleton returns a hash holding exactly one pair.
func Singleton(key, val *Node) *Node {
	return FromKeyVals([]KeyVal{{Key: key, Val: val}})
}

// Append adds v at the end of an array.
func (y *Node) Append(v *Node) {
	if v == nil {
		v = Null()
	}
	y.Values = append(y.Values, v)
}

// Insert adds a key/value pair at the end of a hash. An existing pair with an
// equal key is left in place.
func (y *Node) Insert(key, val *Node) {
	if key == nil {
		key = Null()
	}
	if val == nil {
		val = Null()
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

func (y *Node) Len() int {
	return len(y.Values)
}

// KeyVals returns the pairs of a hash in insertion order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != HashType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Get returns the value of the first pair whose key is the string field.
func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f.Type == StringType && f.Text == field {
			return y.Values[i]
		}
	}
	return nil
}

// String renders the node on one line in flow style. It is meant for
// debugging and test output, not as a serialization.
func (y *Node) String() string {
	var sb strings.Builder
	y.writeFlow(&sb)
	return sb.String()
}

func (y *Node) writeFlow(sb *strings.Builder) {
	if y == nil {
		sb.WriteString("<nil>")
		return
	}
	switch y.Type {
	case NullType:
		sb.WriteString("null")
	case BoolType:
		sb.WriteString(strconv.FormatBool(y.Bool))
	case IntType:
		sb.WriteString(strconv.FormatInt(y.Int, 10))
	case RealType:
		sb.WriteString(y.Text)
	case StringType:
		sb.WriteString(strconv.Quote(y.Text))
	case ArrayType:
		sb.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			v.writeFlow(sb)
		}
		sb.WriteByte(']')
	case HashType:
		sb.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			f.writeFlow(sb)
			sb.WriteString(": ")
			y.Values[i].writeFlow(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(y.Type.String())
	}
}
