package rewriter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripDisallowedAttributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "handler_and_data_attribute_removed",
			input:    `<button onClick={handler} data-test="x" dataSomething="y" type="button">Go</button>`,
			expected: `<button dataSomething="y" type="button">Go</button>`,
		},
		{
			name:     "style_id_removed_bare_kept",
			input:    `<div id='main' style={{color: 'red'}} disabled>`,
			expected: `<div disabled>`,
		},
		{
			name:     "spread_kept",
			input:    `<div {...rest} onBlur={b}>`,
			expected: `<div {...rest}>`,
		},
		{
			name:     "self_closing",
			input:    `<input data-id="1" onChange={c} />`,
			expected: `<input />`,
		},
		{
			name:     "nothing_to_strip",
			input:    `<span className="x">y</span>`,
			expected: `<span className="x">y</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripDisallowedAttributes(RegexpMatcher{}, tt.input, DefaultDisallowed, DefaultDataPrefix)
			if result != tt.expected {
				t.Errorf("StripDisallowedAttributes() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestStripDisallowedAttributes_CustomList(t *testing.T) {
	result := StripDisallowedAttributes(RegexpMatcher{}, `<a href="#" title="t" data-x="1">`, []string{"title"}, "")
	want := `<a href="#" data-x="1">`
	if result != want {
		t.Errorf("got %q, want %q", result, want)
	}
}

func TestSubstituteChildren(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "literal_text",
			input:    `<Foo>Hello</Foo>`,
			expected: `<Foo>{children}</Foo>`,
		},
		{
			name:     "nested_tag_unchanged",
			input:    `<Foo><Bar/></Foo>`,
			expected: `<Foo><Bar/></Foo>`,
		},
		{
			name:     "whitespace_only_unchanged",
			input:    "<p>  \n </p>",
			expected: "<p>  \n </p>",
		},
		{
			name:     "mismatched_close_unchanged",
			input:    `<a>x</b>`,
			expected: `<a>x</b>`,
		},
		{
			name:     "attributes_preserved",
			input:    `<h1 className={cn("t", className)}>Title</h1>`,
			expected: `<h1 className={cn("t", className)}>{children}</h1>`,
		},
		{
			name:     "siblings",
			input:    `<ul><li>One</li><li>Two</li></ul>`,
			expected: `<ul><li>{children}</li><li>{children}</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SubstituteChildren(RegexpMatcher{}, tt.input)
			if result != tt.expected {
				t.Errorf("SubstituteChildren() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	input := "<div class=\"card\" onClick={go}>\n  <h2 className=\"title\">Hello</h2>\n  <Icon/>\n</div>"

	t.Run("with_strip", func(t *testing.T) {
		want := "<div className={cn(\"card\", className)}>\n  <h2 className={cn(\"title\", className)}>{children}</h2>\n  <Icon className={className}/>\n</div>"
		got := Rewrite(input, Options{Strip: true})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without_strip", func(t *testing.T) {
		got := Rewrite(input, Options{})
		if !strings.Contains(got, "onClick={go}") {
			t.Errorf("expected onClick to survive without strip, got %q", got)
		}
	})

	t.Run("no_tags", func(t *testing.T) {
		if got := Rewrite("plain", Options{Strip: true}); got != "plain" {
			t.Errorf("Rewrite() = %q, want pass-through", got)
		}
	})
}

type countingMatcher struct {
	RegexpMatcher
	tagCalls, elemCalls int
}

func (c *countingMatcher) RewriteTags(src string, fn func(Tag) string) string {
	c.tagCalls++
	return c.RegexpMatcher.RewriteTags(src, fn)
}

func (c *countingMatcher) RewriteElements(src string, fn func(Element) string) string {
	c.elemCalls++
	return c.RegexpMatcher.RewriteElements(src, fn)
}

func TestRewrite_UsesInjectedMatcher(t *testing.T) {
	m := &countingMatcher{}
	Rewrite(`<b>x</b>`, Options{Strip: true, Matcher: m})
	if m.tagCalls != 2 || m.elemCalls != 1 {
		t.Errorf("got %d tag scans and %d element scans, want 2 and 1", m.tagCalls, m.elemCalls)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("MyButton", "<button className={className}>{children}</button>", "")
	want := `import React from 'react';
import { cn } from '../lib/utils';

export const MyButton = React.forwardRef(({ className, children, ...props }, ref) => {
  return (
    <>
      <button className={className}>{children}</button>
    </>
  );
});

MyButton.displayName = 'MyButton';

export default MyButton;
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Wrap() mismatch (-want +got):\n%s", diff)
	}

	if n := strings.Count(got, "export const MyButton "); n != 1 {
		t.Errorf("expected one export binding, got %d", n)
	}
	if n := strings.Count(got, "export default MyButton;"); n != 1 {
		t.Errorf("expected one default export, got %d", n)
	}
}

func TestWrap_MultilineAndCustomImport(t *testing.T) {
	got := Wrap("Card", "<div>\n\n  <p/>\n</div>\n", "../../lib/utils")
	if !strings.Contains(got, "import { cn } from '../../lib/utils';") {
		t.Errorf("custom helper import missing:\n%s", got)
	}
	body := "      <div>\n\n        <p/>\n      </div>\n    </>"
	if !strings.Contains(got, body) {
		t.Errorf("body not indented as expected:\n%s", got)
	}
}

func TestWrap_EmptyBlock(t *testing.T) {
	got := Wrap("Empty", "", "")
	if !strings.Contains(got, "    <>\n\n    </>") {
		t.Errorf("expected empty fragment, got:\n%s", got)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my button", "MyButton"},
		{"fancy-card_v2", "FancyCardV2"},
		{"navBar", "NavBar"},
		{"MyButton", "MyButton"},
		{"HTMLParser", "HTMLParser"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"MyButton", "$el", "_x", "Card2"}
	invalid := []string{"", "my-button", "1abc", "My Button"}
	for _, n := range valid {
		if !ValidateName(n) {
			t.Errorf("ValidateName(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if ValidateName(n) {
			t.Errorf("ValidateName(%q) = true, want false", n)
		}
	}
}
