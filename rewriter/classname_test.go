package rewriter

import (
	"strings"
	"testing"
)

func TestMergeClassAttribute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "double_quoted_classname",
			input:    `<div className="a b">x</div>`,
			expected: `<div className={cn("a b", className)}>x</div>`,
		},
		{
			name:     "single_quoted_classname",
			input:    `<span className='x'>y</span>`,
			expected: `<span className={cn("x", className)}>y</span>`,
		},
		{
			name:     "brace_classname_is_expression",
			input:    `<p className={styles.p}>z</p>`,
			expected: `<p className={cn(styles.p, className)}>z</p>`,
		},
		{
			name:     "class_replaced_by_classname",
			input:    `<div class="card" id="c"></div>`,
			expected: `<div id="c" className={cn("card", className)}></div>`,
		},
		{
			name:     "no_class_binds_prop",
			input:    `<section></section>`,
			expected: `<section className={className}></section>`,
		},
		{
			name:     "self_closing_keeps_slash",
			input:    `<img src="a.png" />`,
			expected: `<img src="a.png" className={className} />`,
		},
		{
			name:     "self_closing_without_space",
			input:    `<Icon/>`,
			expected: `<Icon className={className}/>`,
		},
		{
			name:     "classname_and_class_merged",
			input:    `<a className="x" class="y" href="#">l</a>`,
			expected: `<a className={cn("x", "y", className)} href="#">l</a>`,
		},
		{
			name:     "dotted_tag_name",
			input:    `<Foo.Bar>`,
			expected: `<Foo.Bar className={className}>`,
		},
		{
			name:     "other_attributes_keep_order",
			input:    `<input type="text" class="field" disabled name='q'>`,
			expected: `<input type="text" disabled name='q' className={cn("field", className)}>`,
		},
		{
			name:     "data_class_is_not_class",
			input:    `<div data-class="x">`,
			expected: `<div data-class="x" className={className}>`,
		},
		{
			name:     "no_tags_pass_through",
			input:    "just some text",
			expected: "just some text",
		},
		{
			name:     "fragment_untouched",
			input:    `<><b>x</b></>`,
			expected: `<><b className={className}>x</b></>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeClassAttribute(RegexpMatcher{}, tt.input)
			if result != tt.expected {
				t.Errorf("MergeClassAttribute() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestMergeClassAttribute_SingleClassNameRemains(t *testing.T) {
	inputs := []string{
		`<div className="p-4">`,
		`<div className="p-4" class="m-2">`,
		`<div class="m-2">`,
		`<div>`,
	}
	for _, input := range inputs {
		result := MergeClassAttribute(RegexpMatcher{}, input)
		if n := strings.Count(result, "className="); n != 1 {
			t.Errorf("%q: got %d className attributes in %q", input, n, result)
		}
		if strings.Contains(result, " class=") {
			t.Errorf("%q: stray class attribute in %q", input, result)
		}
	}
}

func TestMergeClassAttribute_NotIdempotent(t *testing.T) {
	once := MergeClassAttribute(RegexpMatcher{}, `<div className="a">`)
	twice := MergeClassAttribute(RegexpMatcher{}, once)

	want := `<div className={cn(cn("a", className), className)}>`
	if twice != want {
		t.Errorf("second pass = %q, want nested merge %q", twice, want)
	}
}

func TestMergeClassAttribute_EscapesQuotes(t *testing.T) {
	result := MergeClassAttribute(RegexpMatcher{}, `<i className='a"b'>`)
	want := `<i className={cn("a\"b", className)}>`
	if result != want {
		t.Errorf("got %q, want %q", result, want)
	}
}
