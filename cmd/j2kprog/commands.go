package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	progression "github.com/ajroetker/go-jpeg2000-progression"
)

var version = "dev"

type options struct {
	order      string
	layers     int
	levels     int
	components int
	precincts  int
	tileFile   string
	format     string
	limit      int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var logger *slog.Logger

	cmd := &cobra.Command{
		Use:          "j2kprog",
		Short:        "Enumerate JPEG2000 packets in progression order",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	loggerProvider := func() *slog.Logger { return logger }
	cmd.AddCommand(
		newListCmd(opts, loggerProvider),
		newCountCmd(opts, loggerProvider),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return cmd
}

func addTileFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.order, "order", "LRCP", "progression order (LRCP or RLCP)")
	f.IntVar(&opts.layers, "layers", 1, "number of quality layers")
	f.IntVar(&opts.levels, "levels", 0, "maximum number of decomposition levels (Nmax)")
	f.IntVar(&opts.components, "components", 1, "number of components")
	f.IntVar(&opts.precincts, "precincts", 1, "precincts per resolution level and component")
	f.StringVar(&opts.tileFile, "tile", "", "YAML tile description; replaces --levels, --components and --precincts")
}

func newListCmd(opts *options, log func() *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every packet of the tile in progression order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := buildIterator(cmd, opts, log())
			if err != nil {
				return err
			}
			n, err := writePackets(cmd.OutOrStdout(), it, opts.format, opts.limit)
			if err != nil {
				return err
			}
			log().Debug("listed packets", "count", n)
			return nil
		},
	}
	addTileFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text or json)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after this many packets (0 = all)")
	return cmd
}

func newCountCmd(opts *options, log func() *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of packets of the tile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := buildIterator(cmd, opts, log())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), progression.Count(it))
			return nil
		},
	}
	addTileFlags(cmd, opts)
	return cmd
}

// buildIterator constructs the iterator from either the tile file or the
// geometry flags. Flags given explicitly on the command line take precedence
// over the order and layer count of a tile file.
func buildIterator(cmd *cobra.Command, opts *options, log *slog.Logger) (progression.Iterator, error) {
	orderName, layers := opts.order, opts.layers

	if opts.tileFile != "" {
		tf, err := loadTileFile(opts.tileFile)
		if err != nil {
			return nil, err
		}
		if tf.Order != "" && !cmd.Flags().Changed("order") {
			orderName = tf.Order
		}
		if !cmd.Flags().Changed("layers") {
			layers = tf.Layers
		}
		order, err := progression.ParseOrder(orderName)
		if err != nil {
			return nil, err
		}
		g := tf.geometry()
		log.Debug("tile geometry loaded",
			"file", opts.tileFile,
			"order", order,
			"layers", layers,
			"components", len(g.Components),
			"nmax", g.MaxDecompLevels())
		return g.Iterator(order, layers)
	}

	order, err := progression.ParseOrder(orderName)
	if err != nil {
		return nil, err
	}
	log.Debug("uniform tile",
		"order", order,
		"layers", layers,
		"nmax", opts.levels,
		"components", opts.components,
		"precincts", opts.precincts)
	if opts.precincts < 0 {
		return nil, fmt.Errorf("%w: precincts=%d", progression.ErrInvalidBounds, opts.precincts)
	}
	return progression.New(order, layers, opts.levels, opts.components, progression.UniformPrecincts(opts.precincts))
}

// packetRecord is the JSON form of a packet.
type packetRecord struct {
	Layer      int `json:"layer"`
	Resolution int `json:"resolution"`
	Component  int `json:"component"`
	Precinct   int `json:"precinct"`
}

// writePackets writes up to limit packets (all when limit is 0) and returns
// how many were written.
func writePackets(w io.Writer, it progression.Iterator, format string, limit int) (int, error) {
	var write func(progression.Packet) error
	switch format {
	case "text":
		write = func(p progression.Packet) error {
			_, err := fmt.Fprintln(w, p)
			return err
		}
	case "json":
		enc := json.NewEncoder(w)
		write = func(p progression.Packet) error {
			return enc.Encode(packetRecord(p))
		}
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}

	n := 0
	for p := range progression.Seq(it) {
		if limit > 0 && n == limit {
			break
		}
		if err := write(p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
