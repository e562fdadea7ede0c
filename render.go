package yamlser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"

	"github.com/tipee-sa/yamlser/tree"
)

// Renderer writes a document tree as text. Formatting decisions such as
// style, quoting and indentation belong to the renderer.
type Renderer interface {
	Render(w io.Writer, root *tree.Node) error
}

const defaultIndent = 2

// YAMLRenderer renders with gopkg.in/yaml.v3. String nodes must hold valid
// UTF-8; yaml.v3 refuses to write anything else as a string.
type YAMLRenderer struct {
	// Indent is the indentation width, 2 when not positive.
	Indent int
	// DocumentStart prefixes the output with a "---" marker.
	DocumentStart bool
}

func (r YAMLRenderer) Render(w io.Writer, root *tree.Node) error {
	doc, err := toYAMLNode(root)
	if err != nil {
		return err
	}
	if r.DocumentStart {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
	}
	indent := r.Indent
	if indent <= 0 {
		indent = defaultIndent
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func toYAMLNode(n *tree.Node) (*yaml.Node, error) {
	switch n.Type {
	case tree.NullType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case tree.BoolType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.Bool)}, nil
	case tree.IntType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n.Int, 10)}, nil
	case tree.RealType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlReal(n.Text)}, nil
	case tree.StringType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Text}, nil
	case tree.ArrayType:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		res.Content = make([]*yaml.Node, 0, len(n.Values))
		for _, v := range n.Values {
			yv, err := toYAMLNode(v)
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, yv)
		}
		return res, nil
	case tree.HashType:
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		res.Content = make([]*yaml.Node, 0, 2*len(n.Values))
		for i := range n.Fields {
			yk, err := toYAMLNode(n.Fields[i])
			if err != nil {
				return nil, err
			}
			yv, err := toYAMLNode(n.Values[i])
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, yk, yv)
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot render node type %s", n.Type)
}

// yamlReal maps Go's spelling of the special floats to YAML's.
func yamlReal(text string) string {
	switch text {
	case "+Inf":
		return ".inf"
	case "-Inf":
		return "-.inf"
	case "NaN":
		return ".nan"
	}
	return text
}

// GoccyRenderer renders with github.com/goccy/go-yaml. Hash keys must be
// scalars.
type GoccyRenderer struct {
	// Indent is the indentation width, 2 when not positive.
	Indent int
}

func (r GoccyRenderer) Render(w io.Writer, root *tree.Node) error {
	v, err := toGoccyValue(root)
	if err != nil {
		return err
	}
	indent := r.Indent
	if indent <= 0 {
		indent = defaultIndent
	}
	return goyaml.NewEncoder(w, goyaml.Indent(indent)).Encode(v)
}

// goccyReal emits real text verbatim instead of reformatting a float64. Text
// that reads as an integer gets a ".0" suffix so it stays a float.
type goccyReal string

func (r goccyReal) MarshalYAML() ([]byte, error) {
	text := yamlReal(string(r))
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return []byte(text), nil
}

func toGoccyValue(n *tree.Node) (any, error) {
	switch n.Type {
	case tree.NullType:
		return nil, nil
	case tree.BoolType:
		return n.Bool, nil
	case tree.IntType:
		return n.Int, nil
	case tree.RealType:
		return goccyReal(n.Text), nil
	case tree.StringType:
		return n.Text, nil
	case tree.ArrayType:
		res := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			gv, err := toGoccyValue(v)
			if err != nil {
				return nil, err
			}
			res = append(res, gv)
		}
		return res, nil
	case tree.HashType:
		res := make(goyaml.MapSlice, 0, len(n.Values))
		for i, k := range n.Fields {
			if !k.Type.IsLeaf() {
				return nil, fmt.Errorf("goccy renderer: unsupported %s key %v", k.Type, k)
			}
			gk, err := toGoccyValue(k)
			if err != nil {
				return nil, err
			}
			gv, err := toGoccyValue(n.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, goyaml.MapItem{Key: gk, Value: gv})
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot render node type %s", n.Type)
}
