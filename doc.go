// Package yamlser encodes typed values into YAML document trees and renders
// them as text.
//
// A value describes its own shape by implementing Serializable: it makes one
// call on the Serializer it is given per primitive or container it holds.
// The encoder turns those calls into a tree.Node, which a Renderer then
// writes out.
//
//	type Shape struct{ W, H int }
//
//	func (s Shape) Serialize(ser yamlser.Serializer) (*tree.Node, error) {
//	    st, err := ser.SerializeStructVariant("Shape", 0, "Rect", 2)
//	    if err != nil {
//	        return nil, err
//	    }
//	    if err := st.Field("w", yamlser.ValueOf(s.W)); err != nil {
//	        return nil, err
//	    }
//	    if err := st.Field("h", yamlser.ValueOf(s.H)); err != nil {
//	        return nil, err
//	    }
//	    return st.End()
//	}
//
//	out, err := yamlser.ToString(Shape{3, 4})
//	// Rect:
//	//   w: 3
//	//   h: 4
//
// Plain Go values can be passed through ValueOf, or to Marshal directly.
//
// # Encoding
//
// Integers of every width become 64-bit signed integers; unsigned values
// that do not fit fail with ErrIntRange. Floats keep their shortest
// round-trip text. Byte slices become arrays of integers. Options are
// flattened: Some(x) encodes as x, None as null. Unit variants encode as
// their name, every other variant as a single pair mapping the variant name
// to its payload.
//
// # Renderers
//
//   - YAMLRenderer, the default, uses gopkg.in/yaml.v3
//   - GoccyRenderer uses github.com/goccy/go-yaml
//   - HumanRenderer prints tables with github.com/olekukonko/tablewriter
//
// Setting YAMLSER_DEBUG_ENCODE or YAMLSER_DEBUG_RENDER to true traces
// encoding or rendering to stderr.
package yamlser
