package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/spindle-cli/spindle/cmd/common"
	"github.com/spindle-cli/spindle/cmd/play"
	"github.com/spindle-cli/spindle/cmd/search"
	"github.com/spindle-cli/spindle/cmd/shuffle"
)

type Params struct {
	Player string `short:"p" help:"Media player executable." default:"mpv"`
	Notify bool   `help:"Show a desktop notification when a new file starts." default:"false"`
	Quiet  bool   `short:"q" help:"Only log warnings and errors." default:"false"`
}

type mode int

const (
	modeShuffle mode = iota + 1
	modePlay
	modeSearch
)

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "menu",
		Short:       "Interactively pick a playback mode",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(context.Background(), params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "spindle: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, "1) Shuffle  - random files from ~/Music")
	fmt.Fprintln(stdout, "2) In order - current directory, first to last")
	fmt.Fprintln(stdout, "3) Search   - find a file by name and play it")

	reader := bufio.NewReader(stdin)

	choice, err := prompt(reader, stdout, "Mode [1-3]: ")
	if err != nil {
		return err
	}
	m, err := parseMode(choice)
	if err != nil {
		return err
	}

	switch m {
	case modeShuffle:
		return shuffle.Run(ctx, &shuffle.Params{
			Player: params.Player,
			Notify: params.Notify,
			Quiet:  params.Quiet,
		})
	case modePlay:
		return play.Run(ctx, &play.Params{
			Dir:    ".",
			Player: params.Player,
			Notify: params.Notify,
			Quiet:  params.Quiet,
		})
	default:
		term, err := prompt(reader, stdout, "Search term: ")
		if err != nil {
			return err
		}
		if term == "" {
			return fmt.Errorf("search term cannot be empty")
		}
		dir, err := prompt(reader, stdout, "Search directory (blank = current): ")
		if err != nil {
			return err
		}
		if dir == "" {
			dir = "."
		}
		return search.Run(ctx, &search.Params{
			Term:   term,
			Dir:    dir,
			Player: params.Player,
			Notify: params.Notify,
			Quiet:  params.Quiet,
		}, reader, stdout)
	}
}

func parseMode(input string) (mode, error) {
	switch input {
	case "1":
		return modeShuffle, nil
	case "2":
		return modePlay, nil
	case "3":
		return modeSearch, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: expected 1, 2 or 3", input)
	}
}

func prompt(reader *bufio.Reader, stdout io.Writer, label string) (string, error) {
	fmt.Fprint(stdout, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
