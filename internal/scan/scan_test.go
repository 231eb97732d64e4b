package scan_test

import (
	"testing"

	"bracefix/internal/scan"
)

func TestClassify(t *testing.T) {
	layout := scan.DefaultLayout()

	tests := []struct {
		name string
		line string
		want scan.Kind
	}{
		{"empty line", "", scan.KindBlank},
		{"whitespace only", "   \t", scan.KindBlank},
		{"outer open", "  {", scan.KindBlockOpen},
		{"outer close", "  },", scan.KindOuterClose},
		{"inner close", "    },", scan.KindInnerClose},
		{"deeper inner close", "      },", scan.KindInnerClose},
		{"comment at margin", "// header", scan.KindComment},
		{"indented comment", "    // note", scan.KindComment},
		{"record field", "    name: 'Ada',", scan.KindOther},
		{"open at wrong indent", "    {", scan.KindOther},
		{"outer close with trailing space", "  }, ", scan.KindOther},
		{"close at margin", "},", scan.KindOther},
		{"bare brace", "  }", scan.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifyCustomLayout(t *testing.T) {
	layout := scan.Layout{OuterIndent: 4, InnerIndent: 8, CommentPrefix: "#"}

	if got := layout.Classify("    },"); got != scan.KindOuterClose {
		t.Errorf("Classify outer close = %v, want %v", got, scan.KindOuterClose)
	}
	if got := layout.Classify("        },"); got != scan.KindInnerClose {
		t.Errorf("Classify inner close = %v, want %v", got, scan.KindInnerClose)
	}
	if got := layout.Classify("  # comment"); got != scan.KindComment {
		t.Errorf("Classify comment = %v, want %v", got, scan.KindComment)
	}
	if got := layout.Classify("  // not a comment here"); got != scan.KindOther {
		t.Errorf("Classify slash comment under # layout = %v, want %v", got, scan.KindOther)
	}
}

func TestOuterCloseLine(t *testing.T) {
	if got := scan.DefaultLayout().OuterCloseLine(); got != "  }," {
		t.Errorf("OuterCloseLine() = %q, want %q", got, "  },")
	}
}
