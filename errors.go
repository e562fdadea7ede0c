package yamlser

import "errors"

var (
	// ErrProtocol reports builder calls made in an invalid order, such as a
	// map value without a key.
	ErrProtocol = errors.New("serialization protocol violation")
	// ErrIntRange reports an unsigned integer above math.MaxInt64.
	ErrIntRange = errors.New("integer out of range")
	// ErrUnsupported reports a Go value that has no tree encoding.
	ErrUnsupported = errors.New("unsupported value")

	ErrIO          = errors.New("write error")
	ErrRender      = errors.New("render error")
	ErrInvalidText = errors.New("output is not valid UTF-8")
)
