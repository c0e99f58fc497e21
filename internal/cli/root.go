// Package cli wires the command line to the catalogue.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/albumlist/internal/app"
	"github.com/llehouerou/albumlist/internal/catalog"
	"github.com/llehouerou/albumlist/internal/config"
	"github.com/llehouerou/albumlist/internal/errmsg"
	"github.com/llehouerou/albumlist/internal/icons"
	"github.com/llehouerou/albumlist/internal/logger"
	"github.com/llehouerou/albumlist/internal/report"
)

// errReported marks failures already printed to the user.
var errReported = errors.New("reported")

type options struct {
	verbose    bool
	remove     bool
	search     bool
	sort       string
	database   string
	configFile string
}

// NewRootCommand builds the albumlist command.
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "albumlist <artist> <album> <mediatype>",
		Short: "Keep a list of the albums you own",
		Long: `albumlist adds, removes and searches albums in a local SQLite catalogue.

Artist: use 'Various Artists' for VA releases.
Media type: 'cd' (disk), 'vinyl' (vin), 'digital' (dig, digi) or
'cassette' (cas, cass, tape, mc). Case does not matter.

Exit status: 0 when the command ran, including duplicates, albums not
found and database errors. 1 for an unknown media type, an empty artist
or album, or invalid flags and arguments.`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print the database afterwards")
	f.BoolVarP(&opts.remove, "remove", "r", false, "Remove the album from the database")
	f.BoolVarP(&opts.search, "search", "s", false, "Check if the album is in the database")
	f.StringVar(&opts.sort, "sort", string(catalog.SortArtist), `Listing order for --verbose: "artist", "album" or "mediatype"`)
	f.StringVar(&opts.database, "db", "", "Path to the SQLite database (overrides config)")
	f.StringVar(&opts.configFile, "config", "", "Additional TOML config file")
	cmd.MarkFlagsMutuallyExclusive("remove", "search")

	return cmd
}

func run(ctx context.Context, stdout io.Writer, opts options, args []string) error {
	cfg, err := config.Load(config.Options{File: opts.configFile, Database: opts.database})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoggerSetup, err))
	}
	defer logger.Sync() //nolint:errcheck // nothing left to report to

	out := report.New(stdout, icons.For(cfg.Icons))
	out.SetColorMode(report.ColorMode(cfg.Color))

	action, err := app.ActionFromFlags(opts.remove, opts.search)
	if err != nil {
		return err
	}

	album, err := app.NewAlbum(args[0], args[1], args[2])
	if err != nil {
		logger.Warn("invalid arguments", logger.ErrorField(err))
		out.Print(report.Error, err.Error())
		return errReported
	}

	gw := catalog.NewGateway(cfg.Database)
	logger.Info("using catalogue", logger.String("path", gw.Path()))
	app.New(gw, out).Run(ctx, app.Request{
		Album:   album,
		Action:  action,
		Verbose: opts.verbose,
		Sort:    opts.sort,
	})
	return nil
}

// Run executes the command with args and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "Error:", err)
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		return 1
	}
	return 0
}
