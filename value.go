package yamlser

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/tipee-sa/yamlser/tree"
)

const yamlTag = "yaml"

var (
	serializableType  = reflect.TypeOf((*Serializable)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// ValueOf returns a Serializable describing a plain Go value.
//
//   - values implementing Serializable describe themselves
//   - encoding.TextMarshaler values encode as strings
//   - nil pointers, interfaces, slices and maps encode as None, other
//     pointers as Some
//   - []byte and [N]byte encode as bytes, other slices as sequences and
//     arrays as tuples
//   - maps encode with their keys sorted
//   - structs encode their exported fields, honoring the yaml tag: a name,
//     "-" to skip, omitempty, and inline for embedded structs
//
// Channels, functions, complex numbers and unsafe pointers are rejected with
// ErrUnsupported.
func ValueOf(v any) Serializable {
	if s, ok := v.(Serializable); ok {
		return s
	}
	return reflectValue{v: reflect.ValueOf(v)}
}

type reflectValue struct {
	v reflect.Value
}

func (r reflectValue) Serialize(s Serializer) (*tree.Node, error) {
	v := r.v
	if !v.IsValid() {
		return s.SerializeNone()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return s.SerializeNone()
		}
	}
	if v.CanInterface() {
		t := v.Type()
		if t.Implements(serializableType) {
			return v.Interface().(Serializable).Serialize(s)
		}
		if t.Implements(textMarshalerType) {
			text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return nil, err
			}
			return s.SerializeString(string(text))
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		return s.SerializeSome(reflectValue{v: v.Elem()})
	case reflect.Interface:
		return reflectValue{v: v.Elem()}.Serialize(s)

	case reflect.Bool:
		return s.SerializeBool(v.Bool())

	case reflect.Int:
		return s.SerializeInt(int(v.Int()))
	case reflect.Int8:
		return s.SerializeInt8(int8(v.Int()))
	case reflect.Int16:
		return s.SerializeInt16(int16(v.Int()))
	case reflect.Int32:
		return s.SerializeInt32(int32(v.Int()))
	case reflect.Int64:
		return s.SerializeInt64(v.Int())

	case reflect.Uint, reflect.Uintptr:
		return s.SerializeUint(uint(v.Uint()))
	case reflect.Uint8:
		return s.SerializeUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return s.SerializeUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return s.SerializeUint32(uint32(v.Uint()))
	case reflect.Uint64:
		return s.SerializeUint64(v.Uint())

	case reflect.Float32:
		return s.SerializeFloat32(float32(v.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(v.Float())

	case reflect.String:
		return s.SerializeString(v.String())

	case reflect.Slice:
		if v.IsNil() {
			return s.SerializeNone()
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(v.Bytes())
		}
		seq, err := s.SerializeSeq(v.Len())
		if err != nil {
			return nil, err
		}
		return serializeElements(seq, v)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return s.SerializeBytes(b)
		}
		seq, err := s.SerializeTuple(v.Len())
		if err != nil {
			return nil, err
		}
		return serializeElements(seq, v)

	case reflect.Map:
		if v.IsNil() {
			return s.SerializeNone()
		}
		return serializeMap(s, v)

	case reflect.Struct:
		return serializeStruct(s, v)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
}

func serializeElements(seq SeqBuilder, v reflect.Value) (*tree.Node, error) {
	for i := 0; i < v.Len(); i++ {
		if err := seq.Element(reflectValue{v: v.Index(i)}); err != nil {
			return nil, err
		}
	}
	return seq.End()
}

func serializeMap(s Serializer, v reflect.Value) (*tree.Node, error) {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	m, err := s.SerializeMap(len(keys))
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := m.Entry(reflectValue{v: k}, reflectValue{v: v.MapIndex(k)}); err != nil {
			return nil, err
		}
	}
	return m.End()
}

// compareKeys orders numbers numerically and everything else by its
// formatted text.
func compareKeys(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

type structField struct {
	name      string
	index     []int
	omitEmpty bool
}

func structFields(t reflect.Type) []structField {
	var res []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get(yamlTag), ",")
		if name == "-" {
			continue
		}
		var omitEmpty, inline bool
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "omitempty":
				omitEmpty = true
			case "inline":
				inline = true
			}
		}
		if inline && f.Anonymous && f.Type.Kind() == reflect.Struct {
			for _, sub := range structFields(f.Type) {
				sub.index = append([]int{i}, sub.index...)
				res = append(res, sub)
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, structField{name: name, index: []int{i}, omitEmpty: omitEmpty})
	}
	return res
}

func serializeStruct(s Serializer, v reflect.Value) (*tree.Node, error) {
	t := v.Type()
	fields := structFields(t)
	if len(fields) == 0 {
		return s.SerializeUnitStruct(t.Name())
	}
	present := fields[:0:0]
	for _, f := range fields {
		if f.omitEmpty && v.FieldByIndex(f.index).IsZero() {
			continue
		}
		present = append(present, f)
	}
	st, err := s.SerializeStruct(t.Name(), len(present))
	if err != nil {
		return nil, err
	}
	for _, f := range present {
		if err := st.Field(f.name, reflectValue{v: v.FieldByIndex(f.index)}); err != nil {
			return nil, err
		}
	}
	return st.End()
}
