package pipeline

import "fmt"

// NamedAction pairs a display name with a stage action. The name is used by
// the runner for progress reporting; callers assembling a pipeline should
// keep names unique, which is not enforced here.
type NamedAction struct {
	Name string
	Run  func(*Context) error
}

// ConfigError indicates a missing required stage parameter or an unsupported
// configuration value. It is fatal for the affected stage and is raised
// before any work begins.
type ConfigError struct {
	Field  string
	Reason string
}

// ConfigError implements error
func (e ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("option %s: %s", e.Field, e.Reason)
}
