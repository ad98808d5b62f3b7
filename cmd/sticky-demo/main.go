// Package main provides sticky-demo, a terminal demo of stacking sticky
// headers.
//
// Usage:
//
//	sticky-demo run                  Interactive full-screen demo
//	sticky-demo frames               Print rendered frames for a scroll range
//	sticky-demo version              Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-sticky/internal/debug"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sticky-demo",
		Short: "Stacking sticky headers in a terminal scroll view",
		Long: `sticky-demo renders a long list of headings and paragraphs in a
scroll view. Headings stick to the top edge as they scroll past it, and each
new heading pushes the previous one out.

Set STICKY_DEBUG=/path/to/file to write debug logs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		framesCmd(),
		versionCmd(),
	)

	err := rootCmd.Execute()
	_ = debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sticky-demo %s (%s)\n", version, commit)
		},
	}
}
