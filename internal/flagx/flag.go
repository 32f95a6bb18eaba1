// Package flagx lets several independent flag sets share one command line.
// Each component keeps only the arguments it owns and parses them with its
// own flag.FlagSet, so unknown flags from other components are not errors.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args that belong to allowed flags,
// preserving order. Both "-f value" and "-f=value" forms are recognised; a
// following token is taken as the value only when it does not start with '-'.
func FilterArgs(args []string, allowed []string) []string {
	owned := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		owned[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if owned[name] {
				out = append(out, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// ConfigFileFlag extracts the configuration file path passed with -c or
// -config. It returns "" when neither flag is present.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
