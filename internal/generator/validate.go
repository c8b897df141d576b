package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/replicantgen/internal/toneburst"
)

var (
	ErrPathNotDirectory       = errors.New("save path is not a directory")
	ErrReferencedFileNotFound = errors.New("referenced file not found")
	ErrEmptyType              = errors.New("toneburst type is required")
	ErrUnknownType            = errors.New("unknown toneburst type")
	ErrInvalidFilename        = errors.New("invalid config filename")
)

// ValidateToneBurst runs every pre-flight check for req and reports the first
// failure. It has no side effects and builds nothing.
func (g *Generator) ValidateToneBurst(req ToneBurstRequest) error {
	if err := validateSaveDir(req.SaveDir); err != nil {
		return err
	}
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w; supported: %s", ErrEmptyType, strings.Join(g.registry.Names(), ", "))
	}
	if _, ok := g.registry.Resolve(req.Type); !ok {
		return fmt.Errorf("%w: %q; supported: %s", ErrUnknownType, req.Type, strings.Join(g.registry.Names(), ", "))
	}
	if err := validateSequenceInput(req.Sequence, req.Count); err != nil {
		return err
	}
	for i, spec := range req.Add {
		if err := validateSequenceInput(spec.Sequence, spec.Count); err != nil {
			return fmt.Errorf("add[%d]: %w", i, err)
		}
	}
	for i, spec := range req.Remove {
		if err := validateSequenceInput(spec.Sequence, spec.Count); err != nil {
			return fmt.Errorf("remove[%d]: %w", i, err)
		}
	}
	return validateFilename(req.Filename)
}

// ValidateReplicant checks the save directory and every referenced file.
func (g *Generator) ValidateReplicant(req ReplicantRequest) error {
	if err := validateSaveDir(req.SaveDir); err != nil {
		return err
	}
	for _, path := range []string{req.PolishPath, req.ToneBurstPath} {
		if err := validateReferencedFile(path); err != nil {
			return err
		}
	}
	return nil
}

func validateSaveDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: no path provided", ErrPathNotDirectory)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathNotDirectory, dir)
	}
	return nil
}

func validateReferencedFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrReferencedFileNotFound, path)
	}
	return nil
}

func validateSequenceInput(sequence string, count int) error {
	if sequence == "" {
		return toneburst.ErrEmptySequence
	}
	if !toneburst.ValidCount(count) {
		return fmt.Errorf("%w: %d (must be greater than 0 and less than %d)",
			toneburst.ErrCountOutOfRange, count, toneburst.MaxSequenceLength+1)
	}
	return nil
}

func validateFilename(name string) error {
	if name == "" {
		return nil
	}
	if strings.TrimSpace(name) != name || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
