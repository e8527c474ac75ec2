package pipeline

import (
	"context"
	"fmt"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
)

// generator is the slice of the LLM client the generation stage needs.
type generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (*llm.Result, error)
	Provider() string
	Model() string
}

// Pipeline owns the four stage workers of the monitoring flow. One
// Pipeline serves all processes; per-process state lives in the database.
type Pipeline struct {
	processes *services.ProcessService
	items     *services.WorkItemService
	configs   *services.LLMConfigService
	registry  *upstream.Registry
	cfg       *config.PipelineConfig

	// generatorFor builds the LLM client for a provider config id.
	// Swappable in tests.
	generatorFor func(ctx context.Context, configID string) (generator, error)
}

// New creates a pipeline over the given services and session registry.
func New(
	processes *services.ProcessService,
	items *services.WorkItemService,
	configs *services.LLMConfigService,
	registry *upstream.Registry,
	cfg *config.PipelineConfig,
) *Pipeline {
	p := &Pipeline{
		processes: processes,
		items:     items,
		configs:   configs,
		registry:  registry,
		cfg:       cfg,
	}
	p.generatorFor = func(ctx context.Context, configID string) (generator, error) {
		providerCfg, err := configs.ProviderConfig(ctx, configID)
		if err != nil {
			return nil, err
		}
		return llm.NewClient(providerCfg)
	}
	return p
}

// Run executes one pass of the named stage for the process.
func (p *Pipeline) Run(ctx context.Context, proc *ent.Process, stage string) (*StageResult, error) {
	switch stage {
	case services.StageDiscovery:
		return p.RunDiscovery(ctx, proc), nil
	case services.StagePreparation:
		return p.RunPreparation(ctx, proc), nil
	case services.StageGeneration:
		return p.RunGeneration(ctx, proc), nil
	case services.StagePosting:
		return p.RunPosting(ctx, proc), nil
	}
	return nil, fmt.Errorf("unknown stage %q", stage)
}
