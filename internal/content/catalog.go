package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var builtinCatalog []byte

// Load parses and validates the built-in content catalog.
// Each call returns a fresh Catalog: module statuses are mutated in place
// as the learner progresses, so callers must not share instances.
func Load() (*Catalog, error) {
	return Parse(builtinCatalog)
}

// Parse validates raw catalog JSON against the content schema and decodes
// it. Beyond the schema it enforces the entry invariants the lesson flow
// relies on: unique lesson IDs, answers drawn from the option set, and no
// unlocked module without a first lesson to open.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool)
	for _, m := range c.Modules {
		if m.Status != StatusLocked && len(m.Lessons) == 0 {
			return nil, fmt.Errorf("module %s is %s but has no lessons", m.ID, m.Status)
		}
		for _, l := range m.Lessons {
			if seen[l.ID] {
				return nil, fmt.Errorf("duplicate lesson id %s", l.ID)
			}
			seen[l.ID] = true
			for _, q := range l.Questions {
				if q.Kind == KindMultipleChoice && !containsOption(q.Options, q.Answer) {
					return nil, fmt.Errorf("question %s: answer not among options", q.ID)
				}
			}
		}
	}

	return &c, nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
