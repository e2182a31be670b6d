package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "warbler",
	Short:        "Admin CLI for the warbler social network core",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(
		migrateCmd,
		signupCmd,
		postCmd,
		followCmd,
		unfollowCmd,
		likeCmd,
		profileCmd,
		searchCmd,
		deleteUserCmd,
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
