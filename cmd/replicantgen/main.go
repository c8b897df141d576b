package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/replicantgen/internal/generator"
	"github.com/danmuck/replicantgen/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	logger := logging.ConfigureRuntime("replicantgen", errOut)
	gen := generator.New(logger)

	switch args[0] {
	case "toneburst-client":
		return cmdToneBurstClient(gen, args[1:], out, errOut)
	case "replicant-client":
		return cmdReplicantClient(gen, args[1:], errOut)
	case "batch":
		return cmdBatch(gen, args[1:], out, errOut)
	case "template":
		return cmdTemplate(args[1:], out, errOut)
	case "variants":
		for _, spec := range gen.Variants() {
			fmt.Fprintf(out, "%s\t%s\n", spec.Name, spec.Description)
		}
		return 0
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "replicantgen: generates Replicant and ToneBurst client config files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  replicantgen toneburst-client <saveDirectoryPath> --type <name> --sequence <text> --count <n> [--filename <name>] [--defaults <file.toml>]")
	fmt.Fprintln(w, "  replicantgen replicant-client <saveDirectoryPath> [--polish <path>] [--toneburst <path>]")
	fmt.Fprintln(w, "  replicantgen batch [--mkdir] <manifest.toml|manifest.yaml>")
	fmt.Fprintln(w, "  replicantgen template --kind manifest|manifest-yaml|defaults [--output <path>] [--force]")
	fmt.Fprintln(w, "  replicantgen variants")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - an existing file with the same name in the save directory is replaced")
	fmt.Fprintln(w, "  - --count must be greater than 0 and less than 65,535")
	fmt.Fprintln(w, "  - the default filename is <type>ClientConfig.json")
	fmt.Fprintln(w, "  - written paths and content CIDs are printed to stdout")
}

// parseInterspersed parses flags that may appear before or after positional
// arguments and returns the positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
