package yamlser

import (
	"fmt"

	"github.com/tipee-sa/yamlser/internal/debug"
	"github.com/tipee-sa/yamlser/tree"
)

// finish closes a container node. Variant containers are wrapped in a
// singleton hash keyed by the variant name.
func (e *encoder) finish(kind string, node *tree.Node, variant *string) *tree.Node {
	if variant != nil {
		node = tree.Singleton(tree.FromString(*variant), node)
	}
	if debug.Encode() {
		debug.Logf("encode %s: %v\n", kind, node)
	}
	return node
}

type seqBuilder struct {
	e       *encoder
	node    *tree.Node
	variant *string
	done    bool
}

func (b *seqBuilder) Element(v Serializable) error {
	if b.done {
		return fmt.Errorf("%w: element added to a finished sequence", ErrProtocol)
	}
	n, err := b.e.encode(v)
	if err != nil {
		return err
	}
	b.node.Append(n)
	return nil
}

func (b *seqBuilder) End() (*tree.Node, error) {
	if b.done {
		return nil, fmt.Errorf("%w: sequence finished twice", ErrProtocol)
	}
	b.done = true
	return b.e.finish("seq", b.node, b.variant), nil
}

// mapBuilder holds at most one key waiting for its value. kind names the
// container in encode traces.
type mapBuilder struct {
	e       *encoder
	kind    string
	node    *tree.Node
	pending *tree.Node
	variant *string
	done    bool
}

func (b *mapBuilder) Key(k Serializable) error {
	if b.done {
		return fmt.Errorf("%w: key added to a finished map", ErrProtocol)
	}
	if b.pending != nil {
		return fmt.Errorf("%w: map key submitted while key %v awaits its value", ErrProtocol, b.pending)
	}
	n, err := b.e.encode(k)
	if err != nil {
		return err
	}
	b.pending = n
	return nil
}

func (b *mapBuilder) Value(v Serializable) error {
	if b.done {
		return fmt.Errorf("%w: value added to a finished map", ErrProtocol)
	}
	if b.pending == nil {
		return fmt.Errorf("%w: map value submitted without a matching key", ErrProtocol)
	}
	n, err := b.e.encode(v)
	if err != nil {
		return err
	}
	b.node.Insert(b.pending, n)
	b.pending = nil
	return nil
}

func (b *mapBuilder) Entry(k, v Serializable) error {
	if err := b.Key(k); err != nil {
		return err
	}
	return b.Value(v)
}

func (b *mapBuilder) End() (*tree.Node, error) {
	if b.done {
		return nil, fmt.Errorf("%w: map finished twice", ErrProtocol)
	}
	if b.pending != nil {
		return nil, fmt.Errorf("%w: map finished while key %v awaits its value", ErrProtocol, b.pending)
	}
	b.done = true
	return b.e.finish(b.kind, b.node, b.variant), nil
}

type fieldName string

func (f fieldName) Serialize(s Serializer) (*tree.Node, error) {
	return s.SerializeString(string(f))
}

// structBuilder is a map builder whose keys are static field names.
type structBuilder struct {
	mapBuilder
}

func (b *structBuilder) Field(name string, v Serializable) error {
	return b.Entry(fieldName(name), v)
}
