package config

import (
	"fmt"
	"os"
	"strings"
)

// Template kinds understood by Template and WriteTemplate.
const (
	KindManifest     = "manifest"
	KindManifestYAML = "manifest-yaml"
	KindDefaults     = "defaults"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindManifest:
		return manifestTemplate, nil
	case KindManifestYAML:
		return manifestYAMLTemplate, nil
	case KindDefaults:
		return defaultsTemplate, nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("template already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

const manifestTemplate = `output_dir = "configs"

[[toneburst]]
type = "whalesong"
sequence = "AB"
count = 3

[[toneburst]]
type = "whalesong"
sequence = "AB"
count = 3
filename = "whalesongEdgeClientConfig.json"

[[toneburst.add]]
sequence = "CD"
count = 2

[[toneburst.add]]
sequence = "AB"
count = 3
`

const manifestYAMLTemplate = `output_dir: configs
toneburst:
  - type: whalesong
    sequence: AB
    count: 3
  - type: whalesong
    sequence: AB
    count: 3
    filename: whalesongEdgeClientConfig.json
    add:
      - sequence: CD
        count: 2
      - sequence: AB
        count: 3
`

const defaultsTemplate = `type = "whalesong"
sequence = "AB"
count = 3
# filename = "whalesongClientConfig.json"
`
