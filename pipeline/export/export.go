// Package export builds the pipeline stage that writes a trained model
// artifact to one or more storage adapters.
package export

import (
	"github.com/kirillseva/syberiaStages/pipeline"
	"github.com/kirillseva/syberiaStages/storage"
)

// Build produces one named action per configured export target. Adapters are
// resolved here, at build time, so that resolution failures surface while
// the pipeline is being assembled rather than mid-run: an unknown keyword
// aborts the whole build before any action exists.
func Build(reg *storage.Registry, raw interface{}) ([]pipeline.NamedAction, error) {
	targets, err := NormalizeOptions(raw)
	if err != nil {
		return nil, err
	}

	actions := make([]pipeline.NamedAction, 0, len(targets))
	for _, target := range targets {
		adapter, err := reg.Resolve(target.Keyword)
		if err != nil {
			return nil, err
		}

		// each action gets its own record so it independently remembers its
		// adapter and options
		act := exportAction{adapter: adapter, options: target.Options}
		actions = append(actions, pipeline.NamedAction{
			Name: "Export to " + adapter.Keyword(),
			Run:  act.run,
		})
	}
	return actions, nil
}

type exportAction struct {
	adapter storage.Adapter
	options interface{}
}

func (a exportAction) run(ctx *pipeline.Context) error {
	if ctx.ModelStage.Model == nil {
		return pipeline.ConfigError{Field: "model", Reason: "no trained model in context"}
	}

	if err := a.adapter.Write(ctx.ModelStage.Model, a.options); err != nil {
		return storage.WriteError{Keyword: a.adapter.Keyword(), Err: err}
	}
	return nil
}
