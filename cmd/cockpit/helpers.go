package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/baseline-tools/cockpit/internal/baseline"
	"github.com/baseline-tools/cockpit/internal/common"
)

// newAPIClient builds the backend client from resolved configuration.
func newAPIClient() (*baseline.Client, error) {
	apiURL := viper.GetString("api.url")
	if apiURL == "" {
		return nil, fmt.Errorf("%w: set --api-url, api.url in the config file, or COCKPIT_API_URL", common.ErrMissingConfig)
	}

	client, err := baseline.NewClient(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}
