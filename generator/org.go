package generator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/niklasfasching/go-org/org"
)

// componentLanguages are the src block languages treated as component markup.
var componentLanguages = map[string]bool{"jsx": true, "tsx": true}

// ExtractOrgComponents parses an org-mode document and returns one request per
// jsx/tsx src block that is named, either by a ":component Name" header
// argument or a preceding "#+name:" keyword. Unnamed blocks are skipped.
func ExtractOrgComponents(r io.Reader, path string) ([]Request, error) {
	doc := org.New().Parse(r, path)
	if doc.Error != nil {
		return nil, fmt.Errorf("failed to parse org document %s: %w", path, doc.Error)
	}

	var reqs []Request
	var walk func(nodes []org.Node, name string)
	walk = func(nodes []org.Node, name string) {
		for _, node := range nodes {
			switch n := node.(type) {
			case org.NodeWithName:
				walk([]org.Node{n.Node}, n.Name)
			case org.Headline:
				walk(n.Children, "")
			case org.Block:
				if req, ok := componentFromBlock(n, name, path); ok {
					reqs = append(reqs, req)
				}
			}
		}
	}
	walk(doc.Nodes, "")

	slog.Debug("Extracted org components", "path", path, "count", len(reqs))
	return reqs, nil
}

func componentFromBlock(b org.Block, keywordName, path string) (Request, bool) {
	if !strings.EqualFold(b.Name, "src") || len(b.Parameters) == 0 {
		return Request{}, false
	}
	if !componentLanguages[strings.ToLower(b.Parameters[0])] {
		return Request{}, false
	}

	name := keywordName
	for i, p := range b.Parameters {
		if p == ":component" && i+1 < len(b.Parameters) {
			name = b.Parameters[i+1]
			break
		}
	}
	if name == "" {
		slog.Debug("Skipping unnamed component block", "path", path)
		return Request{}, false
	}

	return Request{
		Name:      name,
		Selection: blockText(b.Children),
		Origin:    path,
	}, true
}

// blockText reassembles the raw content of a src block.
func blockText(nodes []org.Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case org.Text:
			sb.WriteString(n.Content)
		case org.LineBreak:
			sb.WriteString(strings.Repeat("\n", max(n.Count, 1)))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
