package tree

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	RealType
	StringType
	ArrayType
	HashType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		RealType:   "Real",
		StringType: "String",
		ArrayType:  "Array",
		HashType:   "Hash",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, HashType:
		return false
	default:
		return true
	}
}
