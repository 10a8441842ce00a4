// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, creating the parent directory if needed.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Find returns the activity with id, or nil.
func (r *ActivityRegistry) Find(id string) *Activity {
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			return &r.Activities[i]
		}
	}
	return nil
}

// Upsert replaces the activity with the same ID or appends it, and stamps LastUpdated.
func (r *ActivityRegistry) Upsert(a Activity, now time.Time) {
	r.LastUpdated = now.UTC().Format(time.RFC3339)
	if existing := r.Find(a.ID); existing != nil {
		*existing = a
		return
	}
	r.Activities = append(r.Activities, a)
}

// Validate checks required fields, unique IDs and task types, and known statuses.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]string)
	for _, a := range r.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity missing required field: ID")
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate activity ID: %s", a.ID)
		}
		ids[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: TaskType", a.ID)
		}
		if other, ok := taskTypes[a.TaskType]; ok {
			return fmt.Errorf("activities %s and %s share task type %s", other, a.ID, a.TaskType)
		}
		taskTypes[a.TaskType] = a.ID

		if a.Category == "" {
			return fmt.Errorf("activity %s missing required field: Category", a.ID)
		}
		if !validStatuses[a.ImplementationStatus] {
			return fmt.Errorf("activity %s has unknown status %q", a.ID, a.ImplementationStatus)
		}
		if a.Retries < 0 {
			return fmt.Errorf("activity %s has negative retries", a.ID)
		}
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				return fmt.Errorf("activity %s has invalid timeout %q: %w", a.ID, a.Timeout, err)
			}
		}
	}
	return nil
}
