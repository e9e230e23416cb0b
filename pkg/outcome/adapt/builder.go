package adapt

// Builder provides a fluent API to assemble a Config before building the
// adapter. Like Build itself it is total: any sequence of calls produces a
// working Fn.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder starting from the zero Config (goStyle,
// empty chain, reraising default).
func NewBuilder() *Builder {
	return &Builder{}
}

// WithStyle sets the output shape.
func (b *Builder) WithStyle(s Style) *Builder {
	b.cfg.Style = s
	return b
}

// When appends a conditional handler to the chain; order of When calls is
// the evaluation order on failure.
func (b *Builder) When(p Predicate, a Action) *Builder {
	b.cfg.Handlers = append(b.cfg.Handlers, Handler{When: p, Do: a})
	return b
}

// WithDefault replaces the reraising default handler.
func (b *Builder) WithDefault(d DefaultHandler) *Builder {
	b.cfg.Default = d
	return b
}

// Config returns a copy of the assembled configuration.
func (b *Builder) Config() Config {
	cfg := b.cfg
	cfg.Handlers = make([]Handler, len(b.cfg.Handlers))
	copy(cfg.Handlers, b.cfg.Handlers)
	return cfg
}

// Build constructs the adapter from the assembled configuration.
func (b *Builder) Build() Fn {
	return Build(b.cfg)
}
