package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/sitegen/internal/commands"
	"github.com/gerunddev/sitegen/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "build", "b":
		commands.Build(os.Args[2:])
	case "render", "r":
		commands.Render(os.Args[2:])
	case "title":
		commands.Title(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("sitegen v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `sitegen - Generate a static site from markdown

Usage:
  sitegen <command> [options]

Commands:
  build, b          Build the site into the output directory
  render, r         Print the HTML for one markdown file
  title             Print the title of one markdown file
  version           Show version information
  help              Show this help message

Build options:
  --config, -c PATH     Use a specific config file
  --base-path PATH      Prefix root-relative links with PATH (e.g. /blog/)
  --verbose, -v         Log debug output

Examples:
  sitegen build
  sitegen build --base-path /docs/
  sitegen render content/index.md

Config file: %s
`
	fmt.Printf(usage, config.ConfigPath())
}
