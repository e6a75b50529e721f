package cli

import (
	"github.com/spf13/cobra"

	"github.com/triggerfi/triggerfi/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the keeper",
		Long:  "Run starts the condition keeper, order registry API and fill watcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
