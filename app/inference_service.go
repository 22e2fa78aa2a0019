package app

import (
	"context"
	"fmt"
	"time"

	"goherit/domain/core"
	"goherit/domain/pedigree"
	"goherit/domain/posterior"
	"goherit/domain/run"
	"goherit/internal"
	"goherit/ports"
)

// Version is the code version stamped into run manifests.
const Version = "0.3.0"

// InferenceService drives one posterior computation end to end: load the
// pedigree, run the engine, and assemble the audit manifest.
type InferenceService struct {
	source ports.PedigreeSource
	engine ports.InferencePort
	logger *internal.Logger
}

// RunRequest defines the inputs for one inference run
type RunRequest struct {
	CodeVersion string // optional, defaults to Version
}

// RunResult contains the complete output of one inference run
type RunResult struct {
	Manifest   *run.Manifest     `json:"manifest"`
	Posteriors *posterior.Result `json:"posteriors"`
	Stats      ports.EngineStats `json:"stats"`
	Source     string            `json:"source"`
}

// NewInferenceService creates an inference service over a pedigree source and
// an engine
func NewInferenceService(source ports.PedigreeSource, engine ports.InferencePort, logger *internal.Logger) *InferenceService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &InferenceService{
		source: source,
		engine: engine,
		logger: logger,
	}
}

// Run executes the full pipeline with an audit manifest
func (s *InferenceService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	startTime := time.Now()

	codeVersion := req.CodeVersion
	if codeVersion == "" {
		codeVersion = Version
	}

	reg, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pedigree from %s: %w", s.source.Describe(), err)
	}
	s.logger.Debug("loaded pedigree from %s: %d people, %d founders, %d observed",
		s.source.Describe(), reg.Size(), reg.Founders(), reg.Observations())

	res, err := s.engine.Infer(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("inference failed for %s: %w", s.source.Describe(), err)
	}

	runtimeMs := time.Since(startTime).Milliseconds()
	manifest := run.NewManifest(
		core.NewRunID(),
		reg.Hash(),
		s.engine.Model().Hash(),
		res.Stats.People,
		res.Stats.Founders,
		res.Stats.TraitSubsets,
		res.Stats.Assignments,
		res.Stats.Workers,
		runtimeMs,
		codeVersion,
	)
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("run manifest invalid: %w", err)
	}

	s.logger.Info("run %s: %d people, %d trait subsets, %d assignments, %d workers, %dms",
		manifest.RunID, res.Stats.People, res.Stats.TraitSubsets,
		res.Stats.Assignments, res.Stats.Workers, runtimeMs)
	s.logger.Debug("run %s fingerprint %s", manifest.RunID, manifest.Fingerprint.Fingerprint)

	return &RunResult{
		Manifest:   manifest,
		Posteriors: res.Posteriors,
		Stats:      res.Stats,
		Source:     s.source.Describe(),
	}, nil
}

// ValidateSource loads the pedigree without running inference. The registry
// build performs all structural validation.
func (s *InferenceService) ValidateSource(ctx context.Context) (*pedigree.Registry, error) {
	reg, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("pedigree validation failed for %s: %w", s.source.Describe(), err)
	}
	return reg, nil
}
