package rewriter

import "log/slog"

// Options controls which passes run and how attributes are stripped.
type Options struct {
	Strip      bool
	Disallowed []string
	DataPrefix string
	Matcher    Matcher
}

// Pass is one text-to-text rewrite stage.
type Pass func(string) string

// Pipeline runs passes in the order they were added. Later passes see the
// tag boundaries produced by earlier ones.
type Pipeline struct {
	passes []namedPass
}

type namedPass struct {
	name string
	run  Pass
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// WithPass appends a named pass.
func (p *Pipeline) WithPass(name string, pass Pass) *Pipeline {
	p.passes = append(p.passes, namedPass{name: name, run: pass})
	return p
}

func (p *Pipeline) Execute(block string) string {
	for _, pass := range p.passes {
		out := pass.run(block)
		slog.Debug("Rewrite pass complete", "pass", pass.name, "changed", out != block)
		block = out
	}
	return block
}

// NewRewritePipeline builds strip (if enabled), class merge and children
// substitution in that order.
func NewRewritePipeline(opts Options) *Pipeline {
	m := opts.Matcher
	if m == nil {
		m = RegexpMatcher{}
	}

	p := NewPipeline()
	if opts.Strip {
		disallowed := opts.Disallowed
		if disallowed == nil {
			disallowed = DefaultDisallowed
		}
		prefix := opts.DataPrefix
		if prefix == "" {
			prefix = DefaultDataPrefix
		}
		p.WithPass("strip", func(s string) string {
			return StripDisallowedAttributes(m, s, disallowed, prefix)
		})
	}
	return p.
		WithPass("classname", func(s string) string { return MergeClassAttribute(m, s) }).
		WithPass("children", func(s string) string { return SubstituteChildren(m, s) })
}

// Rewrite applies every enabled pass to block.
func Rewrite(block string, opts Options) string {
	return NewRewritePipeline(opts).Execute(block)
}
