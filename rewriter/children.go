package rewriter

import "strings"

// SubstituteChildren replaces the literal text body of each element with the
// children placeholder. Elements with nested tags or a blank body are kept.
func SubstituteChildren(m Matcher, block string) string {
	return m.RewriteElements(block, func(el Element) string {
		if strings.TrimSpace(el.Inner) == "" {
			return el.Full
		}
		return "<" + el.Name + el.Attrs + ">" + ChildrenPlaceholder + "</" + el.Name + ">"
	})
}
