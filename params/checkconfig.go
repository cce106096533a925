package params

import (
	"errors"
	"fmt"
)

// CheckConfig check config
func (c *Config) CheckConfig() error {
	if c.Log != nil && c.Log.Verbosity > maxVerbosity {
		return fmt.Errorf("log verbosity %v is larger than %v", c.Log.Verbosity, maxVerbosity)
	}
	if c.Hasher != nil {
		if err := c.Hasher.CheckConfig(); err != nil {
			return err
		}
	}
	if c.NodeStore != nil {
		if err := c.NodeStore.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check hasher config
func (c *HasherConfig) CheckConfig() error {
	if c.Parallelism < 0 || c.Parallelism > maxParallelism {
		return fmt.Errorf("hasher parallelism %v out of range [0, %v]", c.Parallelism, maxParallelism)
	}
	return nil
}

// CheckConfig check node store config
func (c *NodeStoreConfig) CheckConfig() error {
	if c.DataDir == "" {
		return errors.New("node store must config non empty 'DataDir'")
	}
	if c.Cache < 0 || c.Handles < 0 {
		return errors.New("node store 'Cache' and 'Handles' must not be negative")
	}
	return nil
}
