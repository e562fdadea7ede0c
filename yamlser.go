package yamlser

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tipee-sa/yamlser/internal/debug"
)

// ToWriter encodes v and renders it to w. Output written before a failure is
// not rolled back.
func ToWriter(w io.Writer, v Serializable, opts ...Option) error {
	o := newOptions(opts...)
	doc, err := ToTree(v)
	if err != nil {
		return err
	}
	if debug.Render() {
		debug.Logf("render %T: %v\n", o.renderer, doc)
	}
	tw := &textWriter{w: w}
	err = o.renderer.Render(tw, doc)
	if tw.err != nil {
		return fmt.Errorf("%w: %w", ErrIO, tw.err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func ToBytes(v Serializable, opts ...Option) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	if err := ToWriter(buf, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ToString(v Serializable, opts ...Option) (string, error) {
	d, err := ToBytes(v, opts...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(d) {
		return "", ErrInvalidText
	}
	return string(d), nil
}

// Marshal renders a plain Go value, see ValueOf.
func Marshal(v any, opts ...Option) ([]byte, error) {
	return ToBytes(ValueOf(v), opts...)
}
