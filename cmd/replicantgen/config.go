package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/replicantgen/internal/generator"
)

// defaults.toml key mapping to toneburst-client inputs.
type defaultsFile struct {
	Type      string `toml:"type"`
	Sequence  string `toml:"sequence"`
	Count     int    `toml:"count"`
	Filename  string `toml:"filename"`
	OutputDir string `toml:"output_dir"`
}

// loadDefaults overlays the keys defined in the profile at path onto req.
// A relative output_dir resolves against the profile's directory.
func loadDefaults(path string, req generator.ToneBurstRequest) (generator.ToneBurstRequest, error) {
	var raw defaultsFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return generator.ToneBurstRequest{}, fmt.Errorf("load defaults: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return generator.ToneBurstRequest{}, fmt.Errorf("load defaults: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("type") {
		req.Type = raw.Type
	}
	if meta.IsDefined("sequence") {
		req.Sequence = raw.Sequence
	}
	if meta.IsDefined("count") {
		req.Count = raw.Count
	}
	if meta.IsDefined("filename") {
		req.Filename = raw.Filename
	}
	if meta.IsDefined("output_dir") {
		dir := strings.TrimSpace(raw.OutputDir)
		if dir != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		req.SaveDir = dir
	}
	return req, nil
}
