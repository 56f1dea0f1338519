package content

// ModuleStatus is the gating state of a learning-path module.
type ModuleStatus string

const (
	StatusLocked    ModuleStatus = "LOCKED"
	StatusAvailable ModuleStatus = "AVAILABLE"
	// StatusCompleted exists in the status vocabulary but nothing
	// currently transitions a module into it.
	StatusCompleted ModuleStatus = "COMPLETED"
)

// QuestionKind distinguishes answer formats. Only multiple-choice is
// exercised by the seeded catalog; match and order are defined for
// content packs that use them.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindMatch          QuestionKind = "match"
	KindOrder          QuestionKind = "order"
)

// Question is an immutable quiz question definition.
type Question struct {
	ID          string       `json:"id"`
	Kind        QuestionKind `json:"kind"`
	Prompt      string       `json:"prompt"`
	Options     []string     `json:"options,omitempty"`
	Answer      string       `json:"answer,omitempty"`
	Answers     []string     `json:"answers,omitempty"` // ordered, for match/order kinds
	Explanation string       `json:"explanation"`
}

// Lesson is an immutable lesson definition.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	XPReward    int        `json:"xp_reward"`
	Questions   []Question `json:"questions"`
}

// Module groups lessons behind a pass-score gate. Status is the only
// mutable field; it is flipped in place as the learner progresses.
type Module struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Icon          string       `json:"icon"`
	Status        ModuleStatus `json:"status"`
	RequiredScore float64      `json:"required_score"`
	Lessons       []Lesson     `json:"lessons"`
}

// Asset is a simulated market instrument.
type Asset struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"` // percent change since open
	Class         string  `json:"class"`  // "Stock", "Crypto", "ETF"
	LevelRequired int     `json:"level_required"`
}

// Catalog is the full static content set loaded at startup.
type Catalog struct {
	Modules []Module `json:"modules"`
	Assets  []Asset  `json:"assets"`
}

// Statuses returns the current module status by module ID, in the shape
// snapshots persist.
func (c *Catalog) Statuses() map[string]string {
	m := make(map[string]string, len(c.Modules))
	for i := range c.Modules {
		m[c.Modules[i].ID] = string(c.Modules[i].Status)
	}
	return m
}

// SetStatuses restores module statuses from a snapshot. Unknown module
// IDs and unknown status values are ignored so stale snapshots can't
// corrupt a newer catalog.
func (c *Catalog) SetStatuses(statuses map[string]string) {
	for i := range c.Modules {
		s, ok := statuses[c.Modules[i].ID]
		if !ok {
			continue
		}
		switch ModuleStatus(s) {
		case StatusLocked, StatusAvailable, StatusCompleted:
			c.Modules[i].Status = ModuleStatus(s)
		}
	}
}

// ModuleFor returns the module containing the given lesson and its
// position on the path, or (nil, -1) if no module contains it.
func (c *Catalog) ModuleFor(lessonID string) (*Module, int) {
	for i := range c.Modules {
		for _, l := range c.Modules[i].Lessons {
			if l.ID == lessonID {
				return &c.Modules[i], i
			}
		}
	}
	return nil, -1
}

// UnlockNext marks the module after position idx as AVAILABLE, if one
// exists and it is still locked. Passing a module never marks the module
// itself COMPLETED; only the forward unlock is modeled.
func (c *Catalog) UnlockNext(idx int) bool {
	next := idx + 1
	if next < 0 || next >= len(c.Modules) {
		return false
	}
	if c.Modules[next].Status != StatusLocked {
		return false
	}
	c.Modules[next].Status = StatusAvailable
	return true
}
