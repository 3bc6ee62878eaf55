package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theoremus-urban-solutions/ekitan-modify/config"
	"github.com/theoremus-urban-solutions/ekitan-modify/formatter"
	"github.com/theoremus-urban-solutions/ekitan-modify/transducer"
	"github.com/theoremus-urban-solutions/ekitan-modify/utils"
)

// Version can be overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var errMissingInput = errors.New("missing input file")

type options struct {
	configPath string
	encoding   string
	color      string
	logLevel   string
}

// apply lets flags override the loaded configuration.
func (o *options) apply(cfg *config.AppConfig) {
	if o.encoding != "" {
		cfg.Input.Encoding = o.encoding
	}
	if o.color != "" {
		cfg.Output.Color = o.color
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ekitan-modify inputfile",
		Short: "Reformat Ekitan route search results",
		Long: `ekitan-modify compacts a text dump of Ekitan route search results.
Headlines are folded into the following line, fare notes are dropped and
every leg is annotated with its duration. Use "-" to read standard input.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s inputfile\n", cmd.Name())
				return errMissingInput
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), fsys, cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default config.yml when present)")
	f.StringVar(&opts.encoding, "encoding", "", "input encoding, e.g. utf-8|shift_jis|euc-jp")
	f.StringVar(&opts.color, "color", "", "highlight durations (auto|on|off)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	return cmd
}

func run(ctx context.Context, fsys afero.Fs, cmd *cobra.Command, input string, opts *options) error {
	cfg, err := config.LoadAppConfig(fsys, opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	utils.InitLogging(cmd.ErrOrStderr(), cfg.Log.Level)

	mode, err := formatter.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return err
	}

	raw, err := newReader(fsys, cmd.InOrStdin()).read(input)
	if err != nil {
		return err
	}
	text, err := utils.DecodeText(raw, cfg.Input.Encoding)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	log.Debug("input loaded", "path", input, "encoding", cfg.Input.Encoding, "bytes", len(raw))

	lines, err := transducer.New(transducerOptions(cfg.Transducer)).Process(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return formatter.NewTextWriter(out, mode, isTerminal(out)).Write(lines)
}

func transducerOptions(c config.TransducerConfig) transducer.Options {
	return transducer.Options{
		DropPrefixes:      c.DropPrefixes,
		HeadlineSeparator: c.HeadlineSeparator,
		PlanKeyword:       c.PlanKeyword,
		PlanEndName:       c.PlanEndName,
		DepartureMarker:   c.DepartureMarker,
		ArrivalMarker:     c.ArrivalMarker,
	}
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errMissingInput) {
			log.Error("ekitan-modify failed", "err", err)
		}
		os.Exit(1)
	}
}
