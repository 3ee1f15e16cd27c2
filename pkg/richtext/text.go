package richtext

import (
	"strings"

	"golang.org/x/net/html"
)

// Text extracts the plain-text content of an HTML fragment, the same way a
// rendering surface reports its text content. Markup that fails to parse
// degrades to the text that could be recovered.
func Text(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	var sb strings.Builder
	collectText(root, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
