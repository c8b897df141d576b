package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/replicantgen/internal/configfile"
	"github.com/danmuck/replicantgen/internal/generator"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrManifest = errors.New("invalid manifest")

// Manifest lists ToneBurst client configs to generate in one batch.
type Manifest struct {
	OutputDir  string           `toml:"output_dir" yaml:"output_dir"`
	ToneBursts []ToneBurstEntry `toml:"toneburst" yaml:"toneburst"`
}

type ToneBurstEntry struct {
	Type     string          `toml:"type" yaml:"type"`
	Sequence string          `toml:"sequence" yaml:"sequence"`
	Count    int             `toml:"count" yaml:"count"`
	Filename string          `toml:"filename" yaml:"filename"`
	Add      []SequenceEntry `toml:"add" yaml:"add"`
	Remove   []SequenceEntry `toml:"remove" yaml:"remove"`
}

type SequenceEntry struct {
	Sequence string `toml:"sequence" yaml:"sequence"`
	Count    int    `toml:"count" yaml:"count"`
}

// LoadManifest reads a TOML or YAML manifest, chosen by file extension.
// A relative output_dir resolves against the manifest's directory.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := loadFile(path, &m, toml.Unmarshal); err != nil {
			return Manifest{}, err
		}
	case ".yaml", ".yml":
		if err := loadFile(path, &m, yaml.Unmarshal); err != nil {
			return Manifest{}, err
		}
	default:
		return Manifest{}, fmt.Errorf("%w: unsupported manifest extension %q (expected .toml, .yaml or .yml)", ErrManifest, filepath.Ext(path))
	}

	outDir := strings.TrimSpace(m.OutputDir)
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(filepath.Dir(path), outDir)
	}
	m.OutputDir = filepath.Clean(outDir)

	if err := ValidateManifest(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func loadFile(path string, out any, unmarshal func([]byte, any) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("manifest load failed (%s): %w", path, err)
	}
	if err := unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse failed (%s): %w", ErrManifest, path, err)
	}
	return nil
}

// ValidateManifest checks manifest structure. Per-entry values are checked
// by the generator's validator.
func ValidateManifest(m Manifest) error {
	if len(m.ToneBursts) == 0 {
		return fmt.Errorf("%w: no toneburst entries", ErrManifest)
	}
	seen := make(map[string]int, len(m.ToneBursts))
	for i, entry := range m.ToneBursts {
		name := configfile.ResolveFilename(entry.Type, entry.Filename)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: toneburst[%d] and toneburst[%d] both write %s", ErrManifest, prev, i, name)
		}
		seen[name] = i
	}
	return nil
}

// Requests converts manifest entries into generator requests.
func (m Manifest) Requests() []generator.ToneBurstRequest {
	out := make([]generator.ToneBurstRequest, 0, len(m.ToneBursts))
	for _, entry := range m.ToneBursts {
		out = append(out, generator.ToneBurstRequest{
			SaveDir:  m.OutputDir,
			Type:     entry.Type,
			Sequence: entry.Sequence,
			Count:    entry.Count,
			Filename: entry.Filename,
			Add:      sequenceSpecs(entry.Add),
			Remove:   sequenceSpecs(entry.Remove),
		})
	}
	return out
}

func sequenceSpecs(entries []SequenceEntry) []generator.SequenceSpec {
	if len(entries) == 0 {
		return nil
	}
	out := make([]generator.SequenceSpec, 0, len(entries))
	for _, e := range entries {
		out = append(out, generator.SequenceSpec{Sequence: e.Sequence, Count: e.Count})
	}
	return out
}
