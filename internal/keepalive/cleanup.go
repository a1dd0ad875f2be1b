package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultCleanupTimeout bounds how long Execute waits for all resources.
const DefaultCleanupTimeout = 5 * time.Second

// CleanupManager runs registered cleanup steps once, newest first, with a
// timeout and panic recovery. The entry point uses it for the final
// execution-state release and hotkey unregistration.
type CleanupManager struct {
	mu        sync.Mutex
	resources []CleanupResource
	timeout   time.Duration
	once      sync.Once
	err       error
}

// CleanupResource represents something that must be torn down on exit.
type CleanupResource interface {
	Cleanup() error
	Name() string
}

type cleanupFunc struct {
	name string
	fn   func() error
}

func (c cleanupFunc) Cleanup() error { return c.fn() }
func (c cleanupFunc) Name() string   { return c.name }

// NewCleanupManager returns a manager; a non-positive timeout selects DefaultCleanupTimeout.
func NewCleanupManager(timeout time.Duration) *CleanupManager {
	if timeout <= 0 {
		timeout = DefaultCleanupTimeout
	}
	return &CleanupManager{timeout: timeout}
}

// Register adds a resource to be cleaned up.
func (cm *CleanupManager) Register(resource CleanupResource) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.resources = append(cm.resources, resource)
}

// RegisterFunc registers a named cleanup function.
func (cm *CleanupManager) RegisterFunc(name string, fn func() error) {
	cm.Register(cleanupFunc{name: name, fn: fn})
}

// Execute cleans up every registered resource in reverse registration order.
// Only the first call does any work; later calls return the same error.
func (cm *CleanupManager) Execute() error {
	cm.once.Do(func() {
		cm.err = cm.execute()
	})
	return cm.err
}

func (cm *CleanupManager) execute() error {
	cm.mu.Lock()
	resources := make([]CleanupResource, len(cm.resources))
	copy(resources, cm.resources)
	cm.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	done := make(chan []error, 1)
	go func() {
		var errs []error
		for i := len(resources) - 1; i >= 0; i-- {
			if err := cleanupOne(resources[i]); err != nil {
				errs = append(errs, err)
			}
		}
		done <- errs
	}()

	select {
	case errs := <-done:
		return errors.Join(errs...)
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some resources may not have been cleaned up", cm.timeout)
		return fmt.Errorf("cleanup timeout exceeded after %v", cm.timeout)
	}
}

func cleanupOne(resource CleanupResource) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("cleanup: panic cleaning up %s: %v", resource.Name(), r)
			err = fmt.Errorf("%s: panic during cleanup: %v", resource.Name(), r)
		}
	}()

	if err := resource.Cleanup(); err != nil {
		log.Printf("cleanup: error cleaning up %s: %v", resource.Name(), err)
		return fmt.Errorf("%s: %w", resource.Name(), err)
	}
	log.Printf("cleanup: cleaned up %s", resource.Name())
	return nil
}
