package rewriter

import "strings"

// MergeClassAttribute rewrites every opening tag so that it accepts the
// incoming className prop:
//
//	className="a b"  -> className={cn("a b", className)}
//	className={x}    -> className={cn(x, className)}
//	class="a b"      -> className={cn("a b", className)} (class removed)
//	(none)           -> className={className}
//
// A tag carrying both className and class gets a single merged className.
func MergeClassAttribute(m Matcher, block string) string {
	return m.RewriteTags(block, func(tag Tag) string {
		attrs := tag.Attrs
		nameMatch := reClassNameArg.FindStringSubmatch(attrs)
		classMatch := reClassArg.FindStringSubmatch(attrs)

		switch {
		case nameMatch != nil:
			args := []string{classNameArg(nameMatch)}
			if classMatch != nil {
				args = append(args, quoteJS(firstNonEmpty(classMatch[1], classMatch[2])))
				attrs = strings.Replace(attrs, classMatch[0], "", 1)
			}
			attrs = strings.Replace(attrs, nameMatch[0], nameMatch[1]+classNameAttr(args), 1)
		case classMatch != nil:
			attrs = strings.Replace(attrs, classMatch[0], "", 1)
			attrs = appendAttr(attrs, classNameAttr([]string{quoteJS(firstNonEmpty(classMatch[1], classMatch[2]))}))
		default:
			attrs = appendAttr(attrs, classNameAttr(nil))
		}

		tag.Attrs = attrs
		return tag.String()
	})
}

// classNameAttr builds the className attribute merging args with the prop.
// Empty args bind the prop directly.
func classNameAttr(args []string) string {
	var lits []string
	for _, a := range args {
		if a != "" {
			lits = append(lits, a)
		}
	}
	if len(lits) == 0 {
		return ClassNameVar + "={" + ClassNameVar + "}"
	}
	return ClassNameVar + "={" + MergeHelper + "(" + strings.Join(lits, ", ") + ", " + ClassNameVar + ")}"
}

// classNameArg returns the merge argument for a className match. Quoted
// values become string literals, brace values are expressions.
func classNameArg(match []string) string {
	switch {
	case strings.HasPrefix(match[0][len(match[1]):], `className="`):
		return quoteJS(match[2])
	case strings.HasPrefix(match[0][len(match[1]):], `className='`):
		return quoteJS(match[3])
	default:
		return strings.TrimSpace(match[4])
	}
}

// appendAttr adds attr after the last attribute, keeping any trailing
// whitespace before the tag close.
func appendAttr(attrs, attr string) string {
	trimmed := strings.TrimRight(attrs, " \t\r\n")
	return trimmed + " " + attr + attrs[len(trimmed):]
}

func quoteJS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
