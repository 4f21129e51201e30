package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/sitegen/internal/styles"
)

// buildOptions are the flags accepted by the build command
type buildOptions struct {
	ConfigPath string
	BasePath   string
	Verbose    bool
}

// parseBuildArgs reads --config, --base-path and --verbose
func parseBuildArgs(args []string) (buildOptions, error) {
	var opts buildOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "-c", "--base-path":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			if arg == "--base-path" {
				opts.BasePath = args[i]
			} else {
				opts.ConfigPath = args[i]
			}
		case "--verbose", "-v":
			opts.Verbose = true
		default:
			return opts, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	// a bare "/docs" is accepted and normalized
	if opts.BasePath != "" {
		if !strings.HasPrefix(opts.BasePath, "/") {
			opts.BasePath = "/" + opts.BasePath
		}
		if !strings.HasSuffix(opts.BasePath, "/") {
			opts.BasePath += "/"
		}
	}
	return opts, nil
}

// readMarkdownArg reads the single markdown file named in args
func readMarkdownArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("no input file specified")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fail(msg string, err error) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+msg+": "+err.Error()))
	os.Exit(1)
}
