package yamlser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tipee-sa/yamlser/tree"
)

// encoder is the Serializer producing tree nodes. It holds no per value
// state: every call hands its node back through the return path, so nested
// values may share the encoder of their parent.
type encoder struct{}

// ToTree encodes v into a document tree without rendering it.
func ToTree(v Serializable) (*tree.Node, error) {
	e := &encoder{}
	return e.encode(v)
}

func (e *encoder) encode(v Serializable) (*tree.Node, error) {
	if v == nil {
		return tree.Null(), nil
	}
	n, err := v.Serialize(e)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return tree.Null(), nil
	}
	return n, nil
}

func (e *encoder) SerializeBool(v bool) (*tree.Node, error) {
	return tree.FromBool(v), nil
}

func (e *encoder) SerializeInt(v int) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeInt8(v int8) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeInt16(v int16) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeInt32(v int32) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeInt64(v int64) (*tree.Node, error) {
	return tree.FromInt(v), nil
}

func (e *encoder) SerializeUint(v uint) (*tree.Node, error) {
	return e.SerializeUint64(uint64(v))
}

func (e *encoder) SerializeUint8(v uint8) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeUint16(v uint16) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeUint32(v uint32) (*tree.Node, error) {
	return e.SerializeInt64(int64(v))
}

// SerializeUint64 fails for values the tree's signed integers cannot hold.
func (e *encoder) SerializeUint64(v uint64) (*tree.Node, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrIntRange, v, int64(math.MaxInt64))
	}
	return e.SerializeInt64(int64(v))
}

func (e *encoder) SerializeFloat32(v float32) (*tree.Node, error) {
	return tree.FromReal(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
}

func (e *encoder) SerializeFloat64(v float64) (*tree.Node, error) {
	return tree.FromReal(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

func (e *encoder) SerializeRune(v rune) (*tree.Node, error) {
	return tree.FromString(string(v)), nil
}

func (e *encoder) SerializeString(v string) (*tree.Node, error) {
	return tree.FromString(v), nil
}

type byteValue byte

func (b byteValue) Serialize(s Serializer) (*tree.Node, error) {
	return s.SerializeUint8(uint8(b))
}

// SerializeBytes encodes v as an array of integers; the tree has no binary
// scalar.
func (e *encoder) SerializeBytes(v []byte) (*tree.Node, error) {
	seq, err := e.SerializeSeq(len(v))
	if err != nil {
		return nil, err
	}
	for _, c := range v {
		if err := seq.Element(byteValue(c)); err != nil {
			return nil, err
		}
	}
	return seq.End()
}

func (e *encoder) SerializeUnit() (*tree.Node, error) {
	return tree.Null(), nil
}

func (e *encoder) SerializeUnitStruct(string) (*tree.Node, error) {
	return e.SerializeUnit()
}

func (e *encoder) SerializeUnitVariant(_ string, _ uint32, variant string) (*tree.Node, error) {
	return tree.FromString(variant), nil
}

func (e *encoder) SerializeNone() (*tree.Node, error) {
	return e.SerializeUnit()
}

func (e *encoder) SerializeSome(v Serializable) (*tree.Node, error) {
	return e.encode(v)
}

func (e *encoder) SerializeNewtypeStruct(_ string, v Serializable) (*tree.Node, error) {
	return e.encode(v)
}

func (e *encoder) SerializeNewtypeVariant(_ string, _ uint32, variant string, v Serializable) (*tree.Node, error) {
	n, err := e.encode(v)
	if err != nil {
		return nil, err
	}
	return tree.Singleton(tree.FromString(variant), n), nil
}

func (e *encoder) SerializeSeq(n int) (SeqBuilder, error) {
	return &seqBuilder{e: e, node: tree.NewArray(n)}, nil
}

func (e *encoder) SerializeTuple(n int) (SeqBuilder, error) {
	return e.SerializeSeq(n)
}

func (e *encoder) SerializeTupleStruct(_ string, n int) (SeqBuilder, error) {
	return e.SerializeSeq(n)
}

func (e *encoder) SerializeTupleVariant(_ string, _ uint32, variant string, n int) (SeqBuilder, error) {
	return &seqBuilder{e: e, node: tree.NewArray(n), variant: &variant}, nil
}

func (e *encoder) SerializeMap(n int) (MapBuilder, error) {
	return &mapBuilder{e: e, kind: "map", node: tree.NewHash(n)}, nil
}

func (e *encoder) SerializeStruct(_ string, n int) (StructBuilder, error) {
	return &structBuilder{mapBuilder{e: e, kind: "struct", node: tree.NewHash(n)}}, nil
}

func (e *encoder) SerializeStructVariant(_ string, _ uint32, variant string, n int) (StructBuilder, error) {
	return &structBuilder{mapBuilder{e: e, kind: "struct", node: tree.NewHash(n), variant: &variant}}, nil
}
