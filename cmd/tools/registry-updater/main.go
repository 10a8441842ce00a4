// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"deal-advisor-workers/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "sync":
		err = runSync(os.Args[2:])
	case "update":
		err = runUpdate(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	default:
		help()
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSync regenerates every worker's entry from its schemas, keeping the status and
// workflows already recorded in the registry.
func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	version := fs.String("version", "1.0.0", "Version stamped on regenerated activities")
	_ = fs.Parse(args)

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		reg = &registry.ActivityRegistry{Version: "1.0.0"}
	}

	now := time.Now()
	reg, err = syncRegistry(reg, now, *version)
	if err != nil {
		return err
	}
	if err := reg.Save(*path); err != nil {
		return err
	}
	fmt.Printf("Synced %d activities into %s\n", len(reg.Activities), *path)
	return nil
}

func syncRegistry(reg *registry.ActivityRegistry, now time.Time, version string) (*registry.ActivityRegistry, error) {
	for _, d := range descriptors(now.Year()) {
		status := registry.StatusCompleted
		var workflows []string
		if existing := reg.Find(d.taskType); existing != nil {
			status = existing.ImplementationStatus
			workflows = existing.Workflows
		}

		activity, err := d.toActivity(version, status, workflows)
		if err != nil {
			return nil, err
		}
		reg.Upsert(activity, now)
	}
	return reg, reg.Validate()
}

func runUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	id := fs.String("id", "", "Activity ID to update")
	field := fs.String("field", "", "Field to update (status, version, timeout, retries, workflow)")
	value := fs.String("value", "", "New value for the field")
	_ = fs.Parse(args)

	if *id == "" || *field == "" || *value == "" {
		fs.Usage()
		return fmt.Errorf("id, field, and value are required for update")
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := updateActivity(reg, *id, *field, *value, time.Now()); err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := reg.Save(*path); err != nil {
		return err
	}
	fmt.Printf("Updated activity %s, field %s to %s\n", *id, *field, *value)
	return nil
}

func updateActivity(reg *registry.ActivityRegistry, id, field, value string, now time.Time) error {
	a := reg.Find(id)
	if a == nil {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "timeout":
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		a.Retries = retries
	case "workflow":
		a.Workflows = append(a.Workflows, value)
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.LastUpdated = now.UTC().Format(time.RFC3339)
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	_ = fs.Parse(args)

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}

	fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  sync     Regenerate every worker entry from its input/output schemas
  update   Update an existing activity's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater sync
  registry-updater update -id estimate-price -field workflow -value deal-analysis
  registry-updater validate -path configs/activity-registry.json`)
}
