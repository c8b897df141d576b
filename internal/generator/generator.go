// Package generator runs the two-phase validate-then-execute pipeline that
// turns operator input into ToneBurst and Replicant client config files.
//
// Callers must run Validate* before Execute*. Execute* never touches the
// destination until the config has been fully built and encoded.
package generator

import (
	"fmt"

	"github.com/danmuck/replicantgen/internal/configfile"
	"github.com/danmuck/replicantgen/internal/toneburst"
	"github.com/rs/zerolog"
)

// Sequence errors are shared with the toneburst builders.
var (
	ErrEmptySequence   = toneburst.ErrEmptySequence
	ErrCountOutOfRange = toneburst.ErrCountOutOfRange
)

// SequenceSpec is one raw sequence and repeat count supplied by an operator.
type SequenceSpec struct {
	Sequence string
	Count    int
}

// ToneBurstRequest is the operator input for a ToneBurst client config.
// Empty Add or Remove lists default to the single Sequence/Count pair.
type ToneBurstRequest struct {
	SaveDir  string
	Type     string
	Sequence string
	Count    int
	Filename string
	Add      []SequenceSpec
	Remove   []SequenceSpec
}

// ReplicantRequest is the operator input for a Replicant client config.
type ReplicantRequest struct {
	SaveDir       string
	PolishPath    string
	ToneBurstPath string
}

// Result describes a written config file.
type Result struct {
	Variant string
	Path    string
	Size    int
	CID     string
}

type Generator struct {
	registry *toneburst.Registry
	logger   zerolog.Logger
}

// New returns a generator backed by the default variant registry.
func New(logger zerolog.Logger) *Generator {
	return NewWithRegistry(toneburst.DefaultRegistry(), logger)
}

func NewWithRegistry(registry *toneburst.Registry, logger zerolog.Logger) *Generator {
	if registry == nil {
		registry = toneburst.DefaultRegistry()
	}
	return &Generator{registry: registry, logger: logger}
}

// Variants lists the registered ToneBurst variants.
func (g *Generator) Variants() []toneburst.VariantSpec {
	return g.registry.List()
}

// RunToneBurst validates req and, only if that succeeds, executes it.
func (g *Generator) RunToneBurst(req ToneBurstRequest) (Result, error) {
	if err := g.ValidateToneBurst(req); err != nil {
		return Result{}, err
	}
	return g.ExecuteToneBurst(req)
}

// ExecuteToneBurst builds, encodes and persists the config described by req.
func (g *Generator) ExecuteToneBurst(req ToneBurstRequest) (Result, error) {
	cfg, err := g.BuildToneBurst(req)
	if err != nil {
		return Result{}, err
	}
	data, err := configfile.Encode(cfg)
	if err != nil {
		return Result{}, err
	}
	id, err := configfile.Digest(data)
	if err != nil {
		return Result{}, fmt.Errorf("%w: digest: %w", configfile.ErrEncoding, err)
	}

	filename := configfile.ResolveFilename(cfg.Name(), req.Filename)
	path, err := configfile.Persist(data, req.SaveDir, filename)
	if err != nil {
		g.logger.Error().Err(err).Str("dir", req.SaveDir).Str("file", filename).Msg("save failed")
		return Result{}, err
	}

	res := Result{Variant: cfg.Name(), Path: path, Size: len(data), CID: id.String()}
	g.logger.Info().
		Str("variant", res.Variant).
		Str("path", res.Path).
		Int("bytes", res.Size).
		Str("cid", res.CID).
		Msg("created toneburst client config")
	return res, nil
}

// BuildToneBurst constructs the ClientConfig for req without any I/O.
func (g *Generator) BuildToneBurst(req ToneBurstRequest) (toneburst.ClientConfig, error) {
	spec, ok := g.registry.Resolve(req.Type)
	if !ok {
		return toneburst.ClientConfig{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	add, err := g.buildSequences(req, req.Add)
	if err != nil {
		return toneburst.ClientConfig{}, fmt.Errorf("add sequences: %w", err)
	}
	remove, err := g.buildSequences(req, req.Remove)
	if err != nil {
		return toneburst.ClientConfig{}, fmt.Errorf("remove sequences: %w", err)
	}

	variant, err := spec.Build(add, remove)
	if err != nil {
		return toneburst.ClientConfig{}, fmt.Errorf("%s: %w (sequence %q, count %d)", spec.Name, err, req.Sequence, req.Count)
	}
	g.logger.Debug().
		Str("variant", spec.Name).
		Int("add", len(add)).
		Int("remove", len(remove)).
		Msg("built toneburst variant")
	return toneburst.NewClientConfig(variant)
}

func (g *Generator) buildSequences(req ToneBurstRequest, specs []SequenceSpec) ([]toneburst.SequenceModel, error) {
	if len(specs) == 0 {
		specs = []SequenceSpec{{Sequence: req.Sequence, Count: req.Count}}
	}
	out := make([]toneburst.SequenceModel, 0, len(specs))
	for i, s := range specs {
		model, err := toneburst.NewSequenceModel(s.Sequence, s.Count)
		if err != nil {
			return nil, fmt.Errorf("[%d] %q with a count of %d: %w", i, s.Sequence, s.Count, err)
		}
		out = append(out, model)
	}
	return out, nil
}

// ExecuteReplicant reports the referenced layer configs. Composing a full
// Replicant client config needs Polish support, so nothing is written yet.
func (g *Generator) ExecuteReplicant(req ReplicantRequest) error {
	g.logger.Info().Str("dir", req.SaveDir).Msg("generating replicant client config")
	if req.PolishPath != "" {
		g.logger.Warn().Str("polish", req.PolishPath).Msg("polish configs are not supported yet; ignoring")
	}
	if req.ToneBurstPath != "" {
		g.logger.Info().Str("toneburst", req.ToneBurstPath).Msg("toneburst config referenced")
	}
	return nil
}
