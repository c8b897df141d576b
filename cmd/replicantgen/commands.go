package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/replicantgen/internal/config"
	"github.com/danmuck/replicantgen/internal/generator"
)

func cmdToneBurstClient(gen *generator.Generator, args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("toneburst-client", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		typ, sequence, filename, defaults string
		count                             int
	)
	fs.StringVar(&typ, "type", "", "ToneBurst type; currently only whalesong is supported")
	fs.StringVar(&typ, "t", "", "alias for -type")
	fs.StringVar(&sequence, "sequence", "", "sequence ToneBurst should use")
	fs.StringVar(&sequence, "s", "", "alias for -sequence")
	fs.IntVar(&count, "count", 0, "times the sequence is repeated (1-65534)")
	fs.IntVar(&count, "c", 0, "alias for -count")
	fs.StringVar(&filename, "filename", "", "config filename (default <type>ClientConfig.json)")
	fs.StringVar(&filename, "f", "", "alias for -filename")
	fs.StringVar(&defaults, "defaults", "", "TOML profile supplying defaults for unset flags")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 2
	}
	if len(positional) > 1 {
		fmt.Fprintln(errOut, "usage: replicantgen toneburst-client <saveDirectoryPath> --type <name> --sequence <text> --count <n> [--filename <name>]")
		return 2
	}

	var req generator.ToneBurstRequest
	if defaults != "" {
		req, err = loadDefaults(defaults, req)
		if err != nil {
			fmt.Fprintf(errOut, "toneburst-client: %v\n", err)
			return 1
		}
	}
	set := setFlags(fs)
	if set["type"] || set["t"] {
		req.Type = typ
	}
	if set["sequence"] || set["s"] {
		req.Sequence = sequence
	}
	if set["count"] || set["c"] {
		req.Count = count
	}
	if set["filename"] || set["f"] {
		req.Filename = filename
	}
	if len(positional) == 1 {
		req.SaveDir = positional[0]
	}

	if err := gen.ValidateToneBurst(req); err != nil {
		fmt.Fprintf(errOut, "toneburst-client: %v\n", err)
		return 1
	}
	res, err := gen.ExecuteToneBurst(req)
	if err != nil {
		fmt.Fprintf(errOut, "toneburst-client: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "%s\t%s\n", res.Path, res.CID)
	return 0
}

func cmdReplicantClient(gen *generator.Generator, args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("replicant-client", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var req generator.ReplicantRequest
	fs.StringVar(&req.PolishPath, "polish", "", "path to a Polish config file")
	fs.StringVar(&req.PolishPath, "p", "", "alias for -polish")
	fs.StringVar(&req.ToneBurstPath, "toneburst", "", "path to a ToneBurst config file")
	fs.StringVar(&req.ToneBurstPath, "t", "", "alias for -toneburst")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 2
	}
	if len(positional) != 1 {
		fmt.Fprintln(errOut, "usage: replicantgen replicant-client <saveDirectoryPath> [--polish <path>] [--toneburst <path>]")
		return 2
	}
	req.SaveDir = positional[0]

	if err := gen.ValidateReplicant(req); err != nil {
		fmt.Fprintf(errOut, "replicant-client: %v\n", err)
		return 1
	}
	if err := gen.ExecuteReplicant(req); err != nil {
		fmt.Fprintf(errOut, "replicant-client: %v\n", err)
		return 1
	}
	return 0
}

// cmdBatch validates every manifest entry before writing any file.
func cmdBatch(gen *generator.Generator, args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(errOut)
	mkdir := fs.Bool("mkdir", false, "create the manifest output directory if it is missing")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 2
	}
	if len(positional) != 1 {
		fmt.Fprintln(errOut, "usage: replicantgen batch [--mkdir] <manifest.toml|manifest.yaml>")
		return 2
	}

	manifest, err := config.LoadManifest(positional[0])
	if err != nil {
		fmt.Fprintf(errOut, "batch: %v\n", err)
		return 1
	}
	if *mkdir {
		if err := os.MkdirAll(manifest.OutputDir, 0o755); err != nil {
			fmt.Fprintf(errOut, "batch: create %s: %v\n", manifest.OutputDir, err)
			return 1
		}
	}

	requests := manifest.Requests()
	for i, req := range requests {
		if err := gen.ValidateToneBurst(req); err != nil {
			fmt.Fprintf(errOut, "batch: toneburst[%d]: %v\n", i, err)
			return 1
		}
	}
	for i, req := range requests {
		res, err := gen.ExecuteToneBurst(req)
		if err != nil {
			fmt.Fprintf(errOut, "batch: toneburst[%d]: %v\n", i, err)
			return 1
		}
		fmt.Fprintf(out, "%s\t%s\n", res.Path, res.CID)
	}
	return 0
}

func cmdTemplate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	fs.SetOutput(errOut)
	kind := fs.String("kind", config.KindManifest, "template kind: manifest|manifest-yaml|defaults")
	output := fs.String("output", "", "output path for the template")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	target := *output
	if target == "" {
		switch *kind {
		case config.KindManifest:
			target = "manifest.toml"
		case config.KindManifestYAML:
			target = "manifest.yaml"
		case config.KindDefaults:
			target = "defaults.toml"
		default:
			fmt.Fprintf(errOut, "template: unknown kind: %s\n", *kind)
			return 2
		}
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		fmt.Fprintf(errOut, "template: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, target)
	return 0
}
