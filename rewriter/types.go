package rewriter

import "regexp"

// Rewriter Package Structure:
//
//   - types.go     - Tag/Element types, the Matcher interface, regex patterns
//   - matcher.go   - RegexpMatcher, the default tag scanner
//   - strip.go     - disallowed attribute removal
//   - classname.go - className/class merging into cn(...)
//   - children.go  - literal inner text to {children}
//   - wrap.go      - forwardRef component template
//   - name.go      - component name normalization and validation
//   - pipeline.go  - pass ordering

// Tag is a single opening tag found in a block. Attrs is the raw attribute
// region between the tag name and the closing '>' (or "/>").
type Tag struct {
	Full        string
	Name        string
	Attrs       string
	SelfClosing bool
}

// String renders the tag back to markup.
func (t Tag) String() string {
	if t.SelfClosing {
		return "<" + t.Name + t.Attrs + "/>"
	}
	return "<" + t.Name + t.Attrs + ">"
}

// Element is an opening tag, literal inner text without nested tags, and a
// matching closing tag.
type Element struct {
	Full  string
	Name  string
	Attrs string
	Inner string
}

// Matcher isolates how tags are located so the rewrite passes don't depend on
// the scanning strategy.
type Matcher interface {
	RewriteTags(src string, fn func(Tag) string) string
	RewriteElements(src string, fn func(Element) string) string
}

const (
	// ChildrenPlaceholder replaces literal inner text.
	ChildrenPlaceholder = "{children}"
	// MergeHelper is the runtime helper the merge expressions call.
	MergeHelper = "cn"
	// ClassNameVar is the incoming prop merged into every root class list.
	ClassNameVar = "className"
	// DefaultDataPrefix marks data attributes for stripping.
	DefaultDataPrefix = "data-"
)

// DefaultDisallowed is the fixed set of attribute names removed by the
// strip pass.
var DefaultDisallowed = []string{
	"onClick", "onChange", "onSubmit", "onInput",
	"onKeyDown", "onKeyUp", "onKeyPress",
	"onFocus", "onBlur",
	"onMouseEnter", "onMouseLeave", "onMouseOver", "onMouseOut",
	"onMouseDown", "onMouseUp", "onDoubleClick",
	"style", "id",
}

var (
	reOpenTag      = regexp.MustCompile(`<([A-Za-z][\w.]*)([^>]*?)(/?)>`)
	reLiteralElem  = regexp.MustCompile(`<([A-Za-z][\w.]*)([^>]*)>([^<]+)</([A-Za-z][\w.]*)>`)
	reAttribute    = regexp.MustCompile(`\s+([A-Za-z_:][\w:.-]*)(?:\s*=\s*(?:"[^"]*"|'[^']*'|\{\{[^}]*\}\}|\{[^}]*\}))?`)
	reClassNameArg = regexp.MustCompile(`(\s)className=(?:"([^"]*)"|'([^']*)'|\{([^}]*)\})`)
	reClassArg     = regexp.MustCompile(`\s+class=(?:"([^"]*)"|'([^']*)')`)
	reIdentifier   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	reWordSplit    = regexp.MustCompile(`[^A-Za-z0-9]+`)
)
