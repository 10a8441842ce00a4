package registry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActivity(id string) Activity {
	return Activity{
		ID:                   id,
		DisplayName:          "Estimate Price",
		Category:             "pricing",
		TaskType:             id,
		ImplementationStatus: StatusCompleted,
		Timeout:              "10s",
		Retries:              3,
	}
}

func TestActivityRegistry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ActivityRegistry)
		wantErr string
	}{
		{name: "valid", mutate: func(r *ActivityRegistry) {}},
		{name: "empty", mutate: func(r *ActivityRegistry) { r.Activities = nil }, wantErr: "no activities"},
		{
			name:    "duplicate id",
			mutate:  func(r *ActivityRegistry) { r.Activities = append(r.Activities, validActivity("estimate-price")) },
			wantErr: "duplicate activity ID",
		},
		{
			name: "shared task type",
			mutate: func(r *ActivityRegistry) {
				a := validActivity("price-again")
				a.TaskType = "estimate-price"
				r.Activities = append(r.Activities, a)
			},
			wantErr: "share task type",
		},
		{
			name:    "unknown status",
			mutate:  func(r *ActivityRegistry) { r.Activities[0].ImplementationStatus = "done" },
			wantErr: "unknown status",
		},
		{
			name:    "bad timeout",
			mutate:  func(r *ActivityRegistry) { r.Activities[0].Timeout = "ten seconds" },
			wantErr: "invalid timeout",
		},
		{
			name:    "missing category",
			mutate:  func(r *ActivityRegistry) { r.Activities[0].Category = "" },
			wantErr: "Category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ActivityRegistry{Version: "1.0.0", Activities: []Activity{validActivity("estimate-price")}}
			tt.mutate(reg)

			err := reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestActivityRegistry_UpsertAndSaveRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	reg := &ActivityRegistry{Version: "1.0.0"}

	reg.Upsert(validActivity("estimate-price"), now)
	updated := validActivity("estimate-price")
	updated.Retries = 1
	reg.Upsert(updated, now)
	reg.Upsert(validActivity("breakdown-fees"), now)

	require.Len(t, reg.Activities, 2)
	assert.Equal(t, 1, reg.Find("estimate-price").Retries)
	assert.Nil(t, reg.Find("missing"))
	assert.Equal(t, "2026-03-01T09:00:00Z", reg.LastUpdated)

	path := filepath.Join(t.TempDir(), "nested", "activity-registry.json")
	require.NoError(t, reg.Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, reg.Activities[1].ID, loaded.Activities[1].ID)
	assert.NoError(t, loaded.Validate())
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
