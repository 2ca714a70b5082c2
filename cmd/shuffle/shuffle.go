package shuffle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/spindle-cli/spindle/cmd/common"
	"github.com/spindle-cli/spindle/cmd/session"
)

type Params struct {
	Dir    string `pos:"true" optional:"true" help:"Directory with music files. Defaults to ~/Music." default:""`
	Player string `short:"p" help:"Media player executable." default:"mpv"`
	Notify bool   `help:"Show a desktop notification when a new file starts." default:"false"`
	Quiet  bool   `short:"q" help:"Only log warnings and errors." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "shuffle",
		Short:       "Play random files from a directory until interrupted",
		Long:        "Continuously play uniformly random files from a directory. Repeats are possible. Stops on Ctrl-C, terminating the running player.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(context.Background(), params); err != nil {
				fmt.Fprintf(os.Stderr, "shuffle: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(parentCtx context.Context, params *Params) error {
	dir := params.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, "Music")
	}

	lib, err := session.Enumerate(dir, false, "")
	if err != nil {
		return err
	}

	ctx, cancel := common.InterruptContext(parentCtx)
	defer cancel()

	if err := session.Probe(ctx, params.Player); err != nil {
		return err
	}
	player, err := session.NewExecPlayer(params.Player)
	if err != nil {
		return err
	}

	s := session.New(lib, session.NewRandom(), player, common.SetupLogger(params.Quiet))
	s.Notify = params.Notify
	return s.Run(ctx)
}
