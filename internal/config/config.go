package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"bracefix/internal/scan"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given.
const DefaultFile = "bracefix.toml"

// Config holds everything the CLI reads from bracefix.toml. Fields left out
// of the file keep their defaults.
type Config struct {
	Target  string `toml:"target"`  // file fixed when no argument is given
	Backup  bool   `toml:"backup"`  // write a .bak copy before overwriting
	Journal string `toml:"journal"` // run history path; empty disables it
	Layout  Layout `toml:"layout"`
}

// Layout mirrors scan.Layout in config form.
type Layout struct {
	OuterIndent   int    `toml:"outer_indent"`
	InnerIndent   int    `toml:"inner_indent"`
	CommentPrefix string `toml:"comment_prefix"`
}

// Default returns the configuration matching the original repair script:
// the generated chamber members file, 2/4 space indents, // comments.
func Default() Config {
	l := scan.DefaultLayout()
	return Config{
		Target:  "shared/chamber-members.ts",
		Backup:  true,
		Journal: ".bracefix_journal.json",
		Layout: Layout{
			OuterIndent:   l.OuterIndent,
			InnerIndent:   l.InnerIndent,
			CommentPrefix: l.CommentPrefix,
		},
	}
}

// Load reads the config at path, or DefaultFile when path is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// ScanLayout converts the config layout into the form the detector uses.
func (c Config) ScanLayout() scan.Layout {
	return scan.Layout{
		OuterIndent:   c.Layout.OuterIndent,
		InnerIndent:   c.Layout.InnerIndent,
		CommentPrefix: c.Layout.CommentPrefix,
	}
}
