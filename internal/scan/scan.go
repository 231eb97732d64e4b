package scan

import "strings"

// Kind classifies a single line of the target file.
type Kind int

const (
	KindOther      Kind = iota // anything not covered below
	KindBlank                  // empty or whitespace-only
	KindComment                // single-line comment
	KindBlockOpen              // exactly "{" at the outer indent
	KindOuterClose             // exactly "}," at the outer indent
	KindInnerClose             // "}," indented at least to the inner level
)

// String returns the name of the kind, mostly for test failure messages.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindBlockOpen:
		return "block-open"
	case KindOuterClose:
		return "outer-close"
	case KindInnerClose:
		return "inner-close"
	default:
		return "other"
	}
}

// Layout describes the concrete surface syntax of the block markers.
// The zero value is not useful; use DefaultLayout or fill every field.
type Layout struct {
	OuterIndent   int    // spaces before an outer "{" or "},"
	InnerIndent   int    // minimum spaces before an inner "},"
	CommentPrefix string // prefix of a single-line comment, after indentation
}

// DefaultLayout matches the generated file the tool was written for:
// 2-space outer blocks, 4-space inner records, // comments.
func DefaultLayout() Layout {
	return Layout{
		OuterIndent:   2,
		InnerIndent:   4,
		CommentPrefix: "//",
	}
}

// OuterCloseLine returns the canonical outer closing marker line.
func (l Layout) OuterCloseLine() string {
	return strings.Repeat(" ", l.OuterIndent) + "},"
}

// Classify reports the structural kind of one line. Outer markers must match
// exactly (indent included); an inner close only needs the right content at
// or beyond the inner indent, mirroring how the file's generator emits deeper
// nesting.
func (l Layout) Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return KindBlank
	}
	outer := strings.Repeat(" ", l.OuterIndent)
	switch line {
	case outer + "{":
		return KindBlockOpen
	case outer + "},":
		return KindOuterClose
	}
	if trimmed == "}," && strings.HasPrefix(line, strings.Repeat(" ", l.InnerIndent)) {
		return KindInnerClose
	}
	if l.CommentPrefix != "" && strings.HasPrefix(trimmed, l.CommentPrefix) {
		return KindComment
	}
	return KindOther
}
