package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spindle-cli/spindle/cmd/common"
	"github.com/spindle-cli/spindle/cmd/session"
)

type Params struct {
	Term   string `pos:"true" help:"Substring to match against file names (case-insensitive)."`
	Dir    string `pos:"true" optional:"true" help:"Directory to search under." default:"."`
	Player string `short:"p" help:"Media player executable." default:"mpv"`
	Notify bool   `help:"Show a desktop notification when the file starts." default:"false"`
	Quiet  bool   `short:"q" help:"Only log warnings and errors." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "search",
		Short:       "Search for a file by name and play the picked match",
		Long:        "Recursively search a directory for media files whose name contains the term, list the matches, prompt for a number, and play that one file.",
		ParamEnrich: common.DefaultParamEnricher(),
		PreExecuteFunc: func(params *Params, cmd *cobra.Command, args []string) error {
			if params.Term == "" {
				return fmt.Errorf("search term cannot be empty")
			}
			return nil
		},
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(context.Background(), params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "search: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(parentCtx context.Context, params *Params, stdin io.Reader, stdout io.Writer) error {
	lib, err := session.Enumerate(params.Dir, true, params.Term)
	if err != nil {
		return err
	}

	renderMatches(lib, stdout)

	choice, err := promptChoice(stdin, stdout, lib.Len())
	if err != nil {
		return err
	}
	path, err := session.PickIndex(lib.Files, choice)
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

	s := session.New(lib, nil, player, common.SetupLogger(params.Quiet))
	s.Notify = params.Notify
	return s.PlayOnce(ctx, path)
}

// renderMatches prints the numbered match table the pick refers to.
func renderMatches(lib session.Library, stdout io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(common.TermWidth())

	t.AppendHeader(table.Row{"#", "File", "Folder"})

	for i, path := range lib.Files {
		folder, err := filepath.Rel(lib.Dir, filepath.Dir(path))
		if err != nil {
			folder = filepath.Dir(path)
		}
		t.AppendRow(table.Row{
			i + 1,
			common.TruncateWithEllipsis(filepath.Base(path), 60),
			common.ShortenPath(folder, 40),
		})
	}

	t.Render()
}

func promptChoice(stdin io.Reader, stdout io.Writer, count int) (string, error) {
	fmt.Fprintf(stdout, "Play which one? [1-%d]: ", count)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return "", fmt.Errorf("%w: no selection entered", session.ErrInvalidSelection)
	}
	return strings.TrimSpace(scanner.Text()), nil
}
