package pipeline

import (
	"log/slog"

	"github.com/lugondev/solcodec/internal/config"
	"github.com/lugondev/solcodec/internal/sink"
	"github.com/lugondev/solcodec/internal/source"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// PipelineBuilder provides a fluent API for constructing a Pipeline.
type PipelineBuilder struct {
	pipeline *Pipeline
}

// NewPipelineBuilder creates a new PipelineBuilder with default settings.
func NewPipelineBuilder() *PipelineBuilder {
	return &PipelineBuilder{
		pipeline: &Pipeline{
			Workers:   DefaultWorkers,
			BatchSize: DefaultBatchSize,
			Logger:    slog.Default(),
		},
	}
}

func (b *PipelineBuilder) Source(src source.Source) *PipelineBuilder {
	b.pipeline.Source = src
	return b
}

func (b *PipelineBuilder) Registry(reg *decoder.Registry) *PipelineBuilder {
	b.pipeline.Registry = reg
	return b
}

func (b *PipelineBuilder) Sink(s sink.Sink) *PipelineBuilder {
	b.pipeline.Sink = s
	return b
}

// Config applies the decode and sink settings.
func (b *PipelineBuilder) Config(cfg *config.Config) *PipelineBuilder {
	b.pipeline.Workers = cfg.Decode.Workers
	b.pipeline.Strict = cfg.Decode.Strict
	b.pipeline.BatchSize = cfg.Sink.BatchSize
	return b
}

func (b *PipelineBuilder) Strict(strict bool) *PipelineBuilder {
	b.pipeline.Strict = strict
	return b
}

func (b *PipelineBuilder) Logger(logger *slog.Logger) *PipelineBuilder {
	if logger != nil {
		b.pipeline.Logger = logger
	}
	return b
}

// Build returns the configured Pipeline.
func (b *PipelineBuilder) Build() *Pipeline {
	return b.pipeline
}
