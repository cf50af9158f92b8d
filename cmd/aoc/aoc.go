package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/advent/aoc"
	"github.com/katalvlaran/advent/days"
	"github.com/katalvlaran/advent/internal/log"
)

const (
	configF    = "config"
	verbosityF = "verbosity"
	inputsF    = "inputs"
	formatF    = "format"
	traceF     = "trace"

	defaultConfig    = ""
	defaultVerbosity = "info"
	defaultInputs    = "inputs"
	defaultFormat    = formatInspect
	defaultTrace     = false

	formatInspect = "inspect"
	formatTable   = "table"

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs: debug, info, warn or error."
	inputsFlagUsage    = "Directory holding dayN.txt puzzle inputs."
	formatFlagUsage    = "Output format: inspect or table."
	traceFlagUsage     = "Log the input file and its size before solving."
)

// ErrUnknownDay is returned for a day with no solver.
var ErrUnknownDay = errors.New("aoc: no solver for day")

// Config is the merged result of flags and the optional config file.
type Config struct {
	Verbosity string `mapstructure:"verbosity"`
	Inputs    string `mapstructure:"inputs"`
	Format    string `mapstructure:"format"`
	Trace     bool   `mapstructure:"trace"`
}

var cfgFile string

// NewCmd builds the aoc root command with its run and list subcommands.
func NewCmd() *cobra.Command {
	aocCmd := &cobra.Command{
		Use:           "aoc [command] [flags]",
		Short:         "Advent of Code solutions built on lazy sequences.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	aocCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	aocCmd.PersistentFlags().String(verbosityF, defaultVerbosity, verbosityFlagUsage)
	aocCmd.PersistentFlags().String(inputsF, defaultInputs, inputsFlagUsage)
	aocCmd.PersistentFlags().String(formatF, defaultFormat, formatFlagUsage)
	aocCmd.PersistentFlags().Bool(traceF, defaultTrace, traceFlagUsage)

	aocCmd.AddCommand(RunCmd(), ListCmd())

	return aocCmd
}

// RunCmd solves one day. The input defaults to <inputs>/day<N>.txt.
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <day> [input]",
		Short: "Solve both parts of a day's puzzle",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,
	}
}

// ListCmd prints the days that have a solver.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
}

// loadConfig merges the config file, if any, with the command's flags and
// reconfigures the logger.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Format != formatInspect && cfg.Format != formatTable {
		return nil, errors.Errorf("unknown format %q", cfg.Format)
	}
	if err := log.SetGlobalLogger(cfg.Verbosity); err != nil {
		return nil, errors.Wrap(err, "verbosity")
	}

	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "day %q", args[0])
	}
	solve, ok := days.Lookup(day)
	if !ok {
		return errors.Wrapf(ErrUnknownDay, "day %d", day)
	}

	path := aoc.InputPath(cfg.Inputs, day)
	if len(args) > 1 {
		path = args[1]
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	if cfg.Trace {
		log.Logger.Debugw("Solving", "day", day, "input", path, "size", humanize.Bytes(uint64(len(input))))
	}

	start := time.Now()
	answers, err := solve(input)
	if err != nil {
		return errors.Wrapf(err, "day %d", day)
	}
	elapsed := time.Since(start)
	log.Logger.Infow("Solved", "day", day, "elapsed", elapsed)

	out := cmd.OutOrStdout()
	if cfg.Format == formatTable {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Day", "Part 1", "Part 2", "Elapsed"})
		table.Append([]string{
			strconv.Itoa(day),
			spew.Sprint(answers.Part1),
			spew.Sprint(answers.Part2),
			elapsed.Round(time.Microsecond).String(),
		})
		table.Render()
		return nil
	}

	return inspect(out, day, answers)
}

// inspectConfig dumps answers without pointer addresses so output is stable.
var inspectConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func inspect(w io.Writer, day int, answers days.Answers) error {
	heading := color.New(color.FgCyan, color.Bold)
	if !isTerminal(w) {
		heading.DisableColor()
	}
	if _, err := heading.Fprintf(w, "Day %d\n", day); err != nil {
		return err
	}
	inspectConfig.Fdump(w, answers)

	return nil
}

// isTerminal reports whether w is a terminal that can show colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func list(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Format == formatTable {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Day", "Input"})
		for _, d := range days.All() {
			table.Append([]string{strconv.Itoa(d), aoc.InputPath(cfg.Inputs, d)})
		}
		table.Render()
		return nil
	}
	for _, d := range days.All() {
		if _, err := io.WriteString(out, strconv.Itoa(d)+"\n"); err != nil {
			return err
		}
	}

	return nil
}
