package rewriter

import "strings"

// StripDisallowedAttributes removes every attribute whose name is in disallow
// or starts with dataPrefix from each opening tag in block. A dataPrefix of ""
// disables prefix matching.
func StripDisallowedAttributes(m Matcher, block string, disallow []string, dataPrefix string) string {
	deny := make(map[string]struct{}, len(disallow))
	for _, name := range disallow {
		deny[name] = struct{}{}
	}

	return m.RewriteTags(block, func(tag Tag) string {
		attrs := reAttribute.ReplaceAllStringFunc(tag.Attrs, func(attr string) string {
			parts := reAttribute.FindStringSubmatch(attr)
			if parts == nil {
				return attr
			}
			name := parts[1]
			if _, ok := deny[name]; ok {
				return ""
			}
			if dataPrefix != "" && strings.HasPrefix(name, dataPrefix) {
				return ""
			}
			return attr
		})
		if attrs == tag.Attrs {
			return tag.Full
		}
		tag.Attrs = attrs
		return tag.String()
	})
}
