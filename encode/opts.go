package encode

type Option func(*encState)

// WithIndent overrides the default one-tab indentation.
func WithIndent(s string) Option {
	return func(es *encState) { es.indent = s }
}

func WithColors(c *Colors) Option {
	return func(es *encState) { es.Color = c.Color }
}
