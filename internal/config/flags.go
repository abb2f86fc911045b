// internal/config/flags.go
package config

import (
	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	SortBackground *bool

	set *pflag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.set = fs
	f.SortBackground = fs.Bool("sort-bg", false, "sort themes by background (darkest to lightest)")
}

// ApplyOverrides updates cfg with the flags that were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	f.set.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "sort-bg":
			if f.SortBackground != nil {
				if *f.SortBackground {
					cfg.Preview.Sort = SortBackground
				} else {
					cfg.Preview.Sort = SortName
				}
			}
		}
	})
}
