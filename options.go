package yamlser

type Option func(*options)

type options struct {
	renderer Renderer
	indent   int
}

// WithRenderer selects the renderer used by the entry points. The default is
// YAMLRenderer.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithIndent sets the indentation width of the default YAMLRenderer. It has
// no effect together with WithRenderer.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.renderer == nil {
		o.renderer = YAMLRenderer{Indent: o.indent}
	}
	return o
}
