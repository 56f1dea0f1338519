package content

import (
	"strings"
	"testing"
)

func TestLoadBuiltinCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load builtin catalog: %v", err)
	}

	if len(c.Modules) == 0 {
		t.Fatal("catalog has no modules")
	}
	if len(c.Assets) == 0 {
		t.Fatal("catalog has no assets")
	}

	// The path must open with something playable.
	first := c.Modules[0]
	if first.Status != StatusAvailable {
		t.Errorf("first module status = %s, want AVAILABLE", first.Status)
	}
	if len(first.Lessons) == 0 || len(first.Lessons[0].Questions) == 0 {
		t.Fatal("first module has no playable lesson")
	}
}

func TestLoadReturnsFreshInstances(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	a.Modules[0].Status = StatusLocked
	if b.Modules[0].Status == StatusLocked {
		t.Error("catalogs share module state across Load calls")
	}
}

func TestParseRejectsBadSchema(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"missing modules", `{"assets": []}`},
		{"empty modules", `{"modules": [], "assets": []}`},
		{"bad status", `{"modules": [{"id": "m", "title": "M", "status": "OPEN", "required_score": 0.8, "lessons": []}], "assets": []}`},
		{"score above one", `{"modules": [{"id": "m", "title": "M", "status": "LOCKED", "required_score": 1.5, "lessons": []}], "assets": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseRejectsAnswerOutsideOptions(t *testing.T) {
	raw := `{
		"modules": [{
			"id": "m1", "title": "M", "status": "AVAILABLE", "required_score": 0.8,
			"lessons": [{
				"id": "l1", "title": "L", "xp_reward": 10,
				"questions": [{
					"id": "q1", "kind": "multiple-choice", "prompt": "?",
					"options": ["a", "b"], "answer": "c", "explanation": "x"
				}]
			}]
		}],
		"assets": []
	}`

	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("expected error for answer outside options")
	}
	if !strings.Contains(err.Error(), "answer not among options") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRejectsAvailableModuleWithoutLessons(t *testing.T) {
	raw := `{
		"modules": [{
			"id": "m1", "title": "M", "status": "AVAILABLE",
			"required_score": 0.8, "lessons": []
		}],
		"assets": []
	}`

	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected error for AVAILABLE module without lessons")
	}
}

func TestUnlockNext(t *testing.T) {
	c := &Catalog{Modules: []Module{
		{ID: "m1", Status: StatusAvailable},
		{ID: "m2", Status: StatusLocked},
		{ID: "m3", Status: StatusLocked},
	}}

	if !c.UnlockNext(0) {
		t.Fatal("expected unlock of m2")
	}
	if c.Modules[1].Status != StatusAvailable {
		t.Errorf("m2 status = %s, want AVAILABLE", c.Modules[1].Status)
	}
	if c.Modules[2].Status != StatusLocked {
		t.Errorf("m3 status = %s, want LOCKED", c.Modules[2].Status)
	}

	// Already available: no-op.
	if c.UnlockNext(0) {
		t.Error("re-unlock reported a change")
	}
	// Last module has no successor.
	if c.UnlockNext(2) {
		t.Error("unlock past the end reported a change")
	}
}

func TestStatusesRoundTrip(t *testing.T) {
	c := &Catalog{Modules: []Module{
		{ID: "m1", Status: StatusAvailable},
		{ID: "m2", Status: StatusLocked},
	}}

	saved := c.Statuses()
	saved["m2"] = "AVAILABLE"
	saved["ghost"] = "AVAILABLE"
	c.SetStatuses(saved)

	if c.Modules[1].Status != StatusAvailable {
		t.Error("status not restored")
	}

	// Garbage values are ignored.
	c.SetStatuses(map[string]string{"m1": "BANANA"})
	if c.Modules[0].Status != StatusAvailable {
		t.Error("invalid status value applied")
	}
}

func TestModuleFor(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	first := c.Modules[0].Lessons[0]
	mod, idx := c.ModuleFor(first.ID)
	if mod == nil || idx != 0 {
		t.Fatalf("ModuleFor(%s) = %v, %d", first.ID, mod, idx)
	}

	mod, idx = c.ModuleFor("nope")
	if mod != nil || idx != -1 {
		t.Error("ModuleFor of unknown lesson did not return nil, -1")
	}
}
