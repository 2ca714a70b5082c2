package play

import (
	"context"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/spindle-cli/spindle/cmd/common"
	"github.com/spindle-cli/spindle/cmd/session"
)

type Params struct {
	Dir    string `pos:"true" optional:"true" help:"Directory with music files." default:"."`
	Player string `short:"p" help:"Media player executable." default:"mpv"`
	Notify bool   `help:"Show a desktop notification when a new file starts." default:"false"`
	Quiet  bool   `short:"q" help:"Only log warnings and errors." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play a directory's files in order until interrupted",
		Long:        "Play files alphabetically, wrapping back to the first file after the last one. Stops on Ctrl-C, terminating the running player.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(context.Background(), params); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(parentCtx context.Context, params *Params) error {
	lib, err := session.Enumerate(params.Dir, false, "")
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

	s := session.New(lib, &session.Sequential{}, player, common.SetupLogger(params.Quiet))
	s.Notify = params.Notify
	return s.Run(ctx)
}
