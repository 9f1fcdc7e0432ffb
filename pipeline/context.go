package pipeline

import (
	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/model"
)

// The Context is the shared mutable state of one pipeline run. It is created
// by the runner at pipeline start and discarded at pipeline end; it is not a
// general singleton. Stages receive a reference and must not assume
// exclusive access across stages: only the currently executing stage mutates
// its own sub-record, and cross-stage reads (e.g. the evaluation stage
// reading ModelStage.Model) are read-only.

// ModelStage holds the trained model produced by the upstream training stage.
type ModelStage struct {
	Model model.Model
}

// DataStage holds the modeling dataset along with an optional external
// validation key produced by the upstream data stage.
type DataStage struct {
	Frame *dataset.Frame
	// ValidationPrimaryKey, when present, names the id-column values of the
	// rows held out for validation.
	ValidationPrimaryKey map[string]struct{}
}

// StageRecord is the sub-record a stage owns within the context: its
// configuration under Options, and whatever results it publishes under named
// keys.
type StageRecord struct {
	Options interface{}

	results map[string]interface{}
}

// Put publishes a stage result under the given key.
func (r *StageRecord) Put(key string, value interface{}) {
	if r.results == nil {
		r.results = make(map[string]interface{})
	}
	r.results[key] = value
}

// Get returns a previously published stage result.
func (r *StageRecord) Get(key string) (interface{}, bool) {
	v, ok := r.results[key]
	return v, ok
}

// Context is the shared state for one pipeline run.
type Context struct {
	ModelStage ModelStage
	DataStage  DataStage

	EvaluationStage StageRecord
	ExportStage     StageRecord
}
