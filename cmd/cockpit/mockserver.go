package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/mockapi"
)

func mockServerCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run a local mock backend",
		Long: `Serve an in-memory cockpit backend seeded with sample data. Useful for
trying the review console without access to the real Baseline API:

  cockpit mock-server &
  cockpit review --api-url http://localhost:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := &http.Server{
				Addr:              addr,
				Handler:           mockapi.NewServer(mockapi.DefaultSeed()).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				_ = server.Close()
			}()

			common.LogInfo("mock backend listening", common.Fields{"addr": addr})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("mock server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
