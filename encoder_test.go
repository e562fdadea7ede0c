package yamlser

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tipee-sa/yamlser/tree"
)

func fn(f func(s Serializer) (*tree.Node, error)) Serializable {
	return SerializableFunc(f)
}

func str(v string) Serializable {
	return fn(func(s Serializer) (*tree.Node, error) { return s.SerializeString(v) })
}

func i64(v int64) Serializable {
	return fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt64(v) })
}

func MustTree(t *testing.T, v Serializable) *tree.Node {
	t.Helper()
	n, err := ToTree(v)
	if err != nil {
		t.Fatalf("encoding failed: %s", err)
	}
	return n
}

func AssertTree(t *testing.T, v Serializable, expected *tree.Node) {
	t.Helper()
	if diff := cmp.Diff(expected, MustTree(t, v), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func hash(kvs ...*tree.Node) *tree.Node {
	res := tree.NewHash(len(kvs) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res.Insert(kvs[i], kvs[i+1])
	}
	return res
}

func array(vs ...*tree.Node) *tree.Node {
	return tree.FromSlice(vs)
}

func TestEncodeBool(t *testing.T) {
	for _, b := range []bool{true, false} {
		AssertTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeBool(b) }), tree.FromBool(b))
	}
}

func TestEncodeIntegerWidths(t *testing.T) {
	tests := []struct {
		name     string
		v        Serializable
		expected int64
	}{
		{"int", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt(-42) }), -42},
		{"int8", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt8(math.MinInt8) }), math.MinInt8},
		{"int16", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt16(math.MaxInt16) }), math.MaxInt16},
		{"int32", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt32(math.MinInt32) }), math.MinInt32},
		{"int64", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeInt64(math.MinInt64) }), math.MinInt64},
		{"uint", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint(7) }), 7},
		{"uint8", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint8(math.MaxUint8) }), math.MaxUint8},
		{"uint16", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint16(math.MaxUint16) }), math.MaxUint16},
		{"uint32", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint32(math.MaxUint32) }), math.MaxUint32},
		{"uint64", fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint64(math.MaxInt64) }), math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertTree(t, tt.v, tree.FromInt(tt.expected))
		})
	}
}

func TestEncodeUintOverflow(t *testing.T) {
	_, err := ToTree(fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUint64(math.MaxInt64 + 1) }))
	if !errors.Is(err, ErrIntRange) {
		t.Fatalf("expected ErrIntRange, got %v", err)
	}
}

func TestEncodeFloat(t *testing.T) {
	for _, f := range []float64{0, 0.1, 1, -2.5, 1e21, 123456.789, math.SmallestNonzeroFloat64, math.MaxFloat64} {
		n := MustTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeFloat64(f) }))
		if n.Type != tree.RealType {
			t.Fatalf("expected Real, got %s", n.Type)
		}
		back, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			t.Fatalf("could not reparse %q: %s", n.Text, err)
		}
		if back != f {
			t.Errorf("%q reparsed to %v, expected %v", n.Text, back, f)
		}
	}

	AssertTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeFloat32(0.1) }), tree.FromReal("0.1"))
	AssertTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeFloat64(math.Inf(-1)) }), tree.FromReal("-Inf"))
	AssertTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeFloat64(math.NaN()) }), tree.FromReal("NaN"))
}

func TestEncodeText(t *testing.T) {
	AssertTree(t, fn(func(s Serializer) (*tree.Node, error) { return s.SerializeRune('é') }), tree.FromString("é"))
	AssertTree(t, str("hello"), tree.FromString("hello"))
}

func TestEncodeBytes(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeBytes([]byte{0x41, 0x00, 0xFF}) })
	AssertTree(t, v, array(tree.FromInt(65), tree.FromInt(0), tree.FromInt(255)))

	empty := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeBytes(nil) })
	AssertTree(t, empty, array())
}

func TestEncodeUnitAndOption(t *testing.T) {
	unit := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUnit() })
	unitStruct := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUnitStruct("Empty") })
	none := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeNone() })
	AssertTree(t, unit, tree.Null())
	AssertTree(t, unitStruct, tree.Null())
	AssertTree(t, none, tree.Null())

	for _, x := range []Serializable{str("x"), i64(3), unit, seqOf(i64(1), i64(2))} {
		some := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeSome(x) })
		AssertTree(t, some, MustTree(t, x))
	}

	nested := fn(func(s Serializer) (*tree.Node, error) {
		return s.SerializeSome(fn(func(s Serializer) (*tree.Node, error) { return s.SerializeSome(i64(9)) }))
	})
	AssertTree(t, nested, tree.FromInt(9))
}

func TestEncodeUnitVariant(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeUnitVariant("Color", 1, "Green") })
	AssertTree(t, v, tree.FromString("Green"))
}

func TestEncodeNewtype(t *testing.T) {
	st := fn(func(s Serializer) (*tree.Node, error) { return s.SerializeNewtypeStruct("Meters", i64(5)) })
	AssertTree(t, st, tree.FromInt(5))

	variant := fn(func(s Serializer) (*tree.Node, error) {
		return s.SerializeNewtypeVariant("Shape", 0, "Circle", i64(5))
	})
	AssertTree(t, variant, hash(tree.FromString("Circle"), tree.FromInt(5)))
}

func seqOf(elems ...Serializable) Serializable {
	return fn(func(s Serializer) (*tree.Node, error) {
		seq, err := s.SerializeSeq(len(elems))
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			if err := seq.Element(e); err != nil {
				return nil, err
			}
		}
		return seq.End()
	})
}

func TestEncodeSequences(t *testing.T) {
	AssertTree(t, seqOf(i64(1), str("a"), seqOf()), array(tree.FromInt(1), tree.FromString("a"), array()))

	unknownLen := fn(func(s Serializer) (*tree.Node, error) {
		seq, _ := s.SerializeSeq(-1)
		seq.Element(i64(1))
		return seq.End()
	})
	AssertTree(t, unknownLen, array(tree.FromInt(1)))

	tuple := fn(func(s Serializer) (*tree.Node, error) {
		seq, _ := s.SerializeTuple(2)
		seq.Element(i64(1))
		seq.Element(str("b"))
		return seq.End()
	})
	AssertTree(t, tuple, array(tree.FromInt(1), tree.FromString("b")))

	tupleStruct := fn(func(s Serializer) (*tree.Node, error) {
		seq, _ := s.SerializeTupleStruct("Rgb", 3)
		for _, c := range []int64{1, 2, 3} {
			seq.Element(i64(c))
		}
		return seq.End()
	})
	AssertTree(t, tupleStruct, array(tree.FromInt(1), tree.FromInt(2), tree.FromInt(3)))
}

func TestEncodeTupleVariant(t *testing.T) {
	pair := fn(func(s Serializer) (*tree.Node, error) {
		seq, err := s.SerializeTupleVariant("Shape", 2, "Pair", 2)
		if err != nil {
			return nil, err
		}
		seq.Element(i64(1))
		seq.Element(i64(2))
		return seq.End()
	})
	AssertTree(t, pair, hash(tree.FromString("Pair"), array(tree.FromInt(1), tree.FromInt(2))))
}

func TestEncodeStruct(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) {
		st, err := s.SerializeStruct("S", 2)
		if err != nil {
			return nil, err
		}
		if err := st.Field("a", i64(1)); err != nil {
			return nil, err
		}
		if err := st.Field("b", str("x")); err != nil {
			return nil, err
		}
		return st.End()
	})
	AssertTree(t, v, hash(
		tree.FromString("a"), tree.FromInt(1),
		tree.FromString("b"), tree.FromString("x"),
	))
}

func TestEncodeStructVariant(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) {
		st, _ := s.SerializeStructVariant("Shape", 3, "Rect", 2)
		st.Field("w", i64(3))
		st.Field("h", i64(4))
		return st.End()
	})
	AssertTree(t, v, hash(
		tree.FromString("Rect"), hash(
			tree.FromString("w"), tree.FromInt(3),
			tree.FromString("h"), tree.FromInt(4),
		),
	))
}

func TestEncodeMapOrder(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) {
		m, err := s.SerializeMap(2)
		if err != nil {
			return nil, err
		}
		if err := m.Key(str("z")); err != nil {
			return nil, err
		}
		if err := m.Value(i64(1)); err != nil {
			return nil, err
		}
		if err := m.Entry(str("a"), i64(2)); err != nil {
			return nil, err
		}
		return m.End()
	})
	AssertTree(t, v, hash(
		tree.FromString("z"), tree.FromInt(1),
		tree.FromString("a"), tree.FromInt(2),
	))
}

func TestEncodeMapDuplicateAndComplexKeys(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) {
		m, _ := s.SerializeMap(-1)
		m.Entry(str("k"), i64(1))
		m.Entry(str("k"), i64(2))
		m.Entry(seqOf(i64(1)), fn(func(s Serializer) (*tree.Node, error) { return s.SerializeNone() }))
		return m.End()
	})
	AssertTree(t, v, hash(
		tree.FromString("k"), tree.FromInt(1),
		tree.FromString("k"), tree.FromInt(2),
		array(tree.FromInt(1)), tree.Null(),
	))
}

func TestEncodeMapProtocol(t *testing.T) {
	tests := []struct {
		name  string
		steps func(m MapBuilder) error
	}{
		{"value without key", func(m MapBuilder) error {
			return m.Value(i64(1))
		}},
		{"two values in a row", func(m MapBuilder) error {
			if err := m.Entry(str("a"), i64(1)); err != nil {
				return err
			}
			return m.Value(i64(2))
		}},
		{"two keys in a row", func(m MapBuilder) error {
			if err := m.Key(str("a")); err != nil {
				return err
			}
			return m.Key(str("b"))
		}},
		{"end with pending key", func(m MapBuilder) error {
			if err := m.Key(str("a")); err != nil {
				return err
			}
			_, err := m.End()
			return err
		}},
		{"key after end", func(m MapBuilder) error {
			if _, err := m.End(); err != nil {
				return err
			}
			return m.Key(str("a"))
		}},
		{"end twice", func(m MapBuilder) error {
			if _, err := m.End(); err != nil {
				return err
			}
			_, err := m.End()
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fn(func(s Serializer) (*tree.Node, error) {
				m, err := s.SerializeMap(-1)
				if err != nil {
					return nil, err
				}
				if err := tt.steps(m); err != nil {
					return nil, err
				}
				return m.End()
			})
			_, err := ToTree(v)
			if !errors.Is(err, ErrProtocol) {
				t.Fatalf("expected ErrProtocol, got %v", err)
			}
		})
	}
}

func TestEncodeSeqProtocol(t *testing.T) {
	v := fn(func(s Serializer) (*tree.Node, error) {
		seq, _ := s.SerializeSeq(0)
		if _, err := seq.End(); err != nil {
			return nil, err
		}
		return nil, seq.Element(i64(1))
	})
	if _, err := ToTree(v); !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected ErrProtocol, got %v", err)
	}
}

func TestEncodePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := fn(func(Serializer) (*tree.Node, error) { return nil, boom })

	for name, v := range map[string]Serializable{
		"seq":     seqOf(i64(1), failing),
		"some":    fn(func(s Serializer) (*tree.Node, error) { return s.SerializeSome(failing) }),
		"newtype": fn(func(s Serializer) (*tree.Node, error) { return s.SerializeNewtypeVariant("E", 0, "V", failing) }),
		"map key": fn(func(s Serializer) (*tree.Node, error) {
			m, _ := s.SerializeMap(1)
			if err := m.Entry(failing, i64(1)); err != nil {
				return nil, err
			}
			return m.End()
		}),
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ToTree(v); !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}
		})
	}
}

func TestEncodeNil(t *testing.T) {
	AssertTree(t, nil, tree.Null())
	AssertTree(t, fn(func(Serializer) (*tree.Node, error) { return nil, nil }), tree.Null())
}
