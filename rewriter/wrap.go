package rewriter

import (
	"bytes"
	"strings"
	"text/template"
)

// DefaultHelperImport is the helper module path as seen from the default
// components directory (src/reuseComponents -> src/lib/utils).
const DefaultHelperImport = "../lib/utils"

const componentTemplate = `import React from 'react';
import { {{.Helper}} } from '{{.HelperImport}}';

export const {{.Name}} = React.forwardRef(({ className, children, ...props }, ref) => {
  return (
    <>
{{.Body}}
    </>
  );
});

{{.Name}}.displayName = '{{.Name}}';

export default {{.Name}};
`

var tmplComponent = template.Must(template.New("component").Parse(componentTemplate))

type componentData struct {
	Name         string
	Helper       string
	HelperImport string
	Body         string
}

// Wrap renders block as the body of a forwardRef component called name.
// An empty helperImport falls back to DefaultHelperImport.
func Wrap(name, block, helperImport string) string {
	if helperImport == "" {
		helperImport = DefaultHelperImport
	}

	var buf bytes.Buffer
	// Only string fields are interpolated.
	_ = tmplComponent.Execute(&buf, componentData{
		Name:         name,
		Helper:       MergeHelper,
		HelperImport: helperImport,
		Body:         indent(block, "      "),
	})
	return buf.String()
}

// indent prefixes every non-blank line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
