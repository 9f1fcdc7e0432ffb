package export

import (
	"sort"

	"github.com/kirillseva/syberiaStages/pipeline"
)

// Target names one export destination: an adapter keyword plus the
// adapter-specific option payload, which is opaque to the builder. An empty
// keyword selects the registry default.
type Target struct {
	Keyword string
	Options interface{}
}

// NormalizeOptions coerces a raw export configuration into an ordered list
// of targets. Accepted forms:
//   - []Target or a single Target: used verbatim, order preserved.
//   - a mapping of adapter keyword to options: one target per entry, ordered
//     by keyword since Go maps carry no insertion order.
//   - any other value (e.g. a single resource identifier): a single target
//     under the default keyword with the value as its options.
func NormalizeOptions(raw interface{}) ([]Target, error) {
	switch opts := raw.(type) {
	case nil:
		return nil, pipeline.ConfigError{Field: "export", Reason: "missing export options"}
	case []Target:
		if len(opts) == 0 {
			return nil, pipeline.ConfigError{Field: "export", Reason: "no export targets configured"}
		}
		return opts, nil
	case Target:
		return []Target{opts}, nil
	case map[string]interface{}:
		if len(opts) == 0 {
			return nil, pipeline.ConfigError{Field: "export", Reason: "no export targets configured"}
		}
		keywords := make([]string, 0, len(opts))
		for k := range opts {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)

		targets := make([]Target, 0, len(keywords))
		for _, k := range keywords {
			targets = append(targets, Target{Keyword: k, Options: opts[k]})
		}
		return targets, nil
	default:
		return []Target{{Options: raw}}, nil
	}
}
