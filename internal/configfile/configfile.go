// Package configfile encodes ToneBurst client configs and persists them to disk.
//
// Encoding is deterministic: identical configs always produce identical bytes.
package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/replicantgen/internal/toneburst"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

const (
	filenameSuffix = "ClientConfig.json"
	indent         = "  "
	filePerm       = 0o644
)

var (
	ErrEncoding = errors.New("config encoding failed")
	ErrSave     = errors.New("config save failed")
)

// Encode renders cfg as indented JSON terminated by a newline.
func Encode(cfg toneburst.ClientConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", indent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return append(data, '\n'), nil
}

// DefaultFilename returns "<variant>ClientConfig.json".
func DefaultFilename(variant string) string {
	return variant + filenameSuffix
}

// ResolveFilename prefers explicit when it is set.
func ResolveFilename(variant string, explicit string) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}
	return DefaultFilename(variant)
}

// Persist writes data to dir/filename, replacing any existing file. The bytes
// land in a temp file in dir first and are renamed into place, so the target
// is never observed missing or partially written.
func Persist(data []byte, dir string, filename string) (string, error) {
	target := filepath.Join(dir, filename)

	tmp, err := os.CreateTemp(dir, "."+filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSave, target, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: write %s: %w", ErrSave, target, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: sync %s: %w", ErrSave, target, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: chmod %s: %w", ErrSave, target, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: close %s: %w", ErrSave, target, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %s: %w", ErrSave, target, err)
	}
	return target, nil
}

// Digest returns the CIDv1 (raw codec, sha2-256) of data.
func Digest(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
