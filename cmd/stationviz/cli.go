package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HerbHall/stationviz/internal/config"
	"github.com/HerbHall/stationviz/internal/server"
	"github.com/HerbHall/stationviz/pkg/sld"
)

// loadTheme reads the icon theme from configuration.
func loadTheme(configPath string) (sld.Theme, error) {
	v, err := server.LoadConfig(configPath)
	if err != nil {
		return sld.Theme{}, err
	}
	settings, err := config.FromViper(v)
	if err != nil {
		return sld.Theme{}, err
	}
	return settings.Icons.Theme(), nil
}

// runResolve implements "stationviz resolve [-config path] <kind> [state]".
func runResolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: stationviz resolve [-config path] <kind> [state]")
		fmt.Fprintln(stderr, "  kind is a name (breaker), an SCL equipment type (XCBR) or a code (2, -1)")
	}
	if err := fs.Parse(negativeCodesAsArgs(args)); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 2
	}

	kind, err := sld.ParseNodeKind(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "resolve: %v\n", err)
		return 1
	}

	theme, err := loadTheme(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "resolve: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, theme.Resolve(kind, sld.State(fs.Arg(1))))
	return 0
}

// negativeCodesAsArgs inserts "--" before a leading negative kind code so
// the flag package does not read "-1" as an undefined flag.
func negativeCodesAsArgs(args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--" || !strings.HasPrefix(a, "-"):
			return args
		case a == "-config" || a == "--config":
			i++ // skip the flag value
		default:
			if _, err := strconv.Atoi(a); err != nil {
				continue
			}
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// runManifest implements "stationviz manifest [-config path]".
func runManifest(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("manifest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	theme, err := loadTheme(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "manifest: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sld.Manifest(theme)); err != nil {
		fmt.Fprintf(stderr, "manifest: %v\n", err)
		return 1
	}
	return 0
}
