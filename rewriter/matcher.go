package rewriter

// RegexpMatcher scans tags with regular expressions. It does not understand
// nesting, quoting inside values, or '>' inside attribute expressions.
type RegexpMatcher struct{}

// RewriteTags calls fn for every opening tag in src and splices its return
// value in place of the tag.
func (RegexpMatcher) RewriteTags(src string, fn func(Tag) string) string {
	return reOpenTag.ReplaceAllStringFunc(src, func(m string) string {
		parts := reOpenTag.FindStringSubmatch(m)
		if parts == nil {
			return m
		}
		return fn(Tag{
			Full:        m,
			Name:        parts[1],
			Attrs:       parts[2],
			SelfClosing: parts[3] == "/",
		})
	})
}

// RewriteElements calls fn for every element whose body is plain text.
// Elements whose closing tag names a different element are left as is.
func (RegexpMatcher) RewriteElements(src string, fn func(Element) string) string {
	return reLiteralElem.ReplaceAllStringFunc(src, func(m string) string {
		parts := reLiteralElem.FindStringSubmatch(m)
		if parts == nil || parts[1] != parts[4] {
			return m
		}
		return fn(Element{
			Full:  m,
			Name:  parts[1],
			Attrs: parts[2],
			Inner: parts[3],
		})
	})
}
