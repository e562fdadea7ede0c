package yamlser

import "io"

// textWriter forwards the renderer's text output to a byte sink. It remembers
// the first sink failure so it can be told apart from a renderer failure, and
// refuses further writes once one occurred.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) Write(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	n, err := t.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		t.err = err
	}
	return n, err
}

func (t *textWriter) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}
