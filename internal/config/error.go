package config

import "strings"

// ConfigError collects every problem found while loading a config file
// so the operator can fix them in one pass instead of replaying
// load-fail-edit cycles.
type ConfigError struct {
	Path    string   // file the errors refer to
	Missing []string // unresolved ${VAR} references, with :? messages where given
	Errors  []string // validation failures from Config.Validate
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if len(e.Missing) > 0 {
		b.WriteString("missing environment variables: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - ")
			b.WriteString(msg)
		}
	}
	return b.String()
}
