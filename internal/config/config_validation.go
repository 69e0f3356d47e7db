package config

import "fmt"

// validate checks the merged configuration after defaults have been applied.
// It reports the first invalid group found.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.Path == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}

	if c.Adapter.FoodAPIBaseURL == "" {
		return fmt.Errorf("%w: empty food API base URL", ErrInvalidAdapterConfigs)
	}
	if c.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidAdapterConfigs)
	}
	if c.Adapter.SearchPageSize <= 0 {
		return fmt.Errorf("%w: non-positive search page size", ErrInvalidAdapterConfigs)
	}

	return nil
}
