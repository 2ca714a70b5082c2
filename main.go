package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/spindle-cli/spindle/cmd/menu"
	"github.com/spindle-cli/spindle/cmd/play"
	"github.com/spindle-cli/spindle/cmd/search"
	"github.com/spindle-cli/spindle/cmd/shuffle"
)

func main() {
	boa.CmdT[menu.Params]{
		Use:     "spindle",
		Short:   "Launch music from a directory through an external player",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			shuffle.Cmd(),
			play.Cmd(),
			search.Cmd(),
			menu.Cmd(),
		},
		// Bare `spindle` presents the interactive mode menu
		RunFunc: func(params *menu.Params, cmd *cobra.Command, args []string) {
			if err := menu.Run(context.Background(), params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "spindle: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
