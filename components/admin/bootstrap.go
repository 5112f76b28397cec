package admin

import (
	"context"
	"errors"
	"fmt"
)

// RegisterDefaultResources registers the built-in demo resources.
func RegisterDefaultResources(registry *Registry) error {
	if registry == nil {
		return errors.New("admin: registry is required to register resources")
	}
	for _, resource := range DefaultResources() {
		if err := registry.RegisterResource(resource); err != nil {
			return fmt.Errorf("register resource %s: %w", resource.ID, err)
		}
	}
	return nil
}

// SeedRecords creates the starter records through the store so ids and
// timestamps are assigned the normal way.
func SeedRecords(ctx context.Context, store RecordStore) error {
	if store == nil {
		return errMissingRecordStore
	}
	var seedErr error
	for _, input := range DefaultSeedRecords() {
		if _, err := store.CreateRecord(ctx, input); err != nil {
			seedErr = errors.Join(seedErr, fmt.Errorf("seed record for %s: %w", input.ResourceID, err))
		}
	}
	return seedErr
}

// Bootstrap registers the demo resources on the service's registry and seeds
// starter records. Hosts with real resources skip it.
func Bootstrap(ctx context.Context, service *Service) error {
	if service == nil {
		return errors.New("admin: service is required to bootstrap")
	}
	if err := RegisterDefaultResources(service.Registry()); err != nil {
		return err
	}
	return SeedRecords(ctx, service.store)
}
