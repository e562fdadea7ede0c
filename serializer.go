package yamlser

import "github.com/tipee-sa/yamlser/tree"

// Serializable is implemented by values that can describe their own shape to a
// Serializer. Serialize must make exactly one top level call on s and return
// its result.
type Serializable interface {
	Serialize(s Serializer) (*tree.Node, error)
}

// SerializableFunc adapts a function to Serializable.
type SerializableFunc func(s Serializer) (*tree.Node, error)

func (f SerializableFunc) Serialize(s Serializer) (*tree.Node, error) {
	return f(s)
}

// Serializer receives one call per primitive or container in a value. Every
// call returns the finished node for that value; container calls return a
// builder whose End method does.
//
// Length hints are advisory. A negative hint means the length is unknown.
//
// Enum variants are identified by the enum name, the variant index and the
// variant name. Only the variant name is recorded in the tree.
type Serializer interface {
	SerializeBool(v bool) (*tree.Node, error)

	SerializeInt(v int) (*tree.Node, error)
	SerializeInt8(v int8) (*tree.Node, error)
	SerializeInt16(v int16) (*tree.Node, error)
	SerializeInt32(v int32) (*tree.Node, error)
	SerializeInt64(v int64) (*tree.Node, error)

	SerializeUint(v uint) (*tree.Node, error)
	SerializeUint8(v uint8) (*tree.Node, error)
	SerializeUint16(v uint16) (*tree.Node, error)
	SerializeUint32(v uint32) (*tree.Node, error)
	SerializeUint64(v uint64) (*tree.Node, error)

	SerializeFloat32(v float32) (*tree.Node, error)
	SerializeFloat64(v float64) (*tree.Node, error)

	SerializeRune(v rune) (*tree.Node, error)
	SerializeString(v string) (*tree.Node, error)
	SerializeBytes(v []byte) (*tree.Node, error)

	SerializeUnit() (*tree.Node, error)
	SerializeUnitStruct(name string) (*tree.Node, error)
	SerializeUnitVariant(name string, index uint32, variant string) (*tree.Node, error)

	// SerializeNone and SerializeSome encode an optional value. The option
	// itself leaves no trace: Some(x) encodes as x and None as unit.
	SerializeNone() (*tree.Node, error)
	SerializeSome(v Serializable) (*tree.Node, error)

	SerializeNewtypeStruct(name string, v Serializable) (*tree.Node, error)
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serializable) (*tree.Node, error)

	SerializeSeq(n int) (SeqBuilder, error)
	SerializeTuple(n int) (SeqBuilder, error)
	SerializeTupleStruct(name string, n int) (SeqBuilder, error)
	SerializeTupleVariant(name string, index uint32, variant string, n int) (SeqBuilder, error)

	SerializeMap(n int) (MapBuilder, error)
	SerializeStruct(name string, n int) (StructBuilder, error)
	SerializeStructVariant(name string, index uint32, variant string, n int) (StructBuilder, error)
}

// SeqBuilder accumulates the elements of a sequence, tuple or tuple variant.
type SeqBuilder interface {
	Element(v Serializable) error
	End() (*tree.Node, error)
}

// MapBuilder accumulates map entries. Each Key must be followed by exactly one
// Value before the next Key or End.
type MapBuilder interface {
	Key(k Serializable) error
	Value(v Serializable) error
	// Entry is Key followed by Value.
	Entry(k, v Serializable) error
	End() (*tree.Node, error)
}

// StructBuilder accumulates struct fields in declaration order.
type StructBuilder interface {
	Field(name string, v Serializable) error
	End() (*tree.Node, error)
}
