package config

import (
	"fmt"
	"sync"
)

var (
	global    *Config
	globalErr error
	initOnce  sync.Once
)

// Get returns the process-wide configuration, loading and validating it on
// first call. The outcome is cached for the process lifetime, so every caller
// observes the same fully-constructed instance and environment changes made
// after the first call are not picked up. A load failure is cached too:
// retrying without new process input cannot succeed.
func Get() (*Config, error) {
	initOnce.Do(func() {
		global, globalErr = Load()
		if globalErr != nil {
			globalErr = fmt.Errorf("load configuration: %w", globalErr)
		}
	})
	return global, globalErr
}

// resetForTest clears the singleton so tests can exercise first-call paths.
func resetForTest() {
	initOnce = sync.Once{}
	global = nil
	globalErr = nil
}
