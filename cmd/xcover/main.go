// Command xcover solves exact cover with colors problems stored in
// Knuth's textual format.
//
// Usage:
//
//	xcover solve FILE [--max N] [--quiet]
//	xcover count FILE [--zdd]
//	xcover verify FILE OPTION...
//
// The first significant line of FILE declares the primary items,
// optionally followed by "| secondary items" (which also enables colored
// tokens); every further line is one option. Solutions are printed to
// stdout as option indices; progress and statistics go to stderr.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/gitrdm/goxcover/pkg/xcover"
)

type options struct {
	configPath string
	debug      bool
	quiet      bool
	max        int
	zdd        bool
	heuristic  heuristicFlag

	logger *logrus.Logger
}

// heuristicFlag exposes xcover.Heuristic as a pflag.Value so the flag
// rejects unknown names at parse time.
type heuristicFlag xcover.Heuristic

var _ pflag.Value = (*heuristicFlag)(nil)

func (h *heuristicFlag) String() string {
	if xcover.Heuristic(*h) == xcover.HeuristicLeftmost {
		return "leftmost"
	}
	return "mrv"
}

func (h *heuristicFlag) Set(s string) error {
	switch s {
	case "", "mrv":
		*h = heuristicFlag(xcover.HeuristicMRV)
	case "leftmost":
		*h = heuristicFlag(xcover.HeuristicLeftmost)
	default:
		return fmt.Errorf("unknown heuristic %q (want mrv or leftmost)", s)
	}
	return nil
}

func (h *heuristicFlag) Type() string { return "heuristic" }

// fileConfig mirrors the flags that may be preset from a YAML file; flags
// given on the command line win.
type fileConfig struct {
	Max       int    `yaml:"max"`
	ZDD       bool   `yaml:"zdd"`
	Heuristic string `yaml:"heuristic"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:          "xcover",
		Short:        "Exact cover with colors solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.logger.SetOutput(os.Stderr)
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			return o.loadConfigFile(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "path to a YAML file with default flag values")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.PersistentFlags().Var(&o.heuristic, "heuristic", "branching heuristic: mrv or leftmost")

	cmd.AddCommand(newSolveCmd(o), newCountCmd(o), newVerifyCmd(o))
	return cmd
}

func (o *options) loadConfigFile(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	raw, err := os.ReadFile(o.configPath)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%s: %w", o.configPath, err)
	}
	if !cmd.Flags().Changed("max") && fc.Max != 0 {
		o.max = fc.Max
	}
	if !cmd.Flags().Changed("zdd") && fc.ZDD {
		o.zdd = true
	}
	if !cmd.Flags().Changed("heuristic") && fc.Heuristic != "" {
		if err := o.heuristic.Set(fc.Heuristic); err != nil {
			return fmt.Errorf("%s: %w", o.configPath, err)
		}
	}
	o.logger.Debugf("loaded defaults from %s", o.configPath)
	return nil
}

func (o *options) readProblem(path string) (*xcover.Problem, error) {
	start := time.Now()
	p, err := xcover.ReadProblemFile(path)
	if err != nil {
		return nil, err
	}
	if h := xcover.Heuristic(o.heuristic); h != xcover.HeuristicMRV {
		cfg := p.Config()
		cfg.Heuristic = h
		opts := make([][]string, p.NumOptions())
		for i := range opts {
			opts[i] = p.OptionTokens(i)
		}
		if p, err = xcover.NewProblemWithConfig(opts, &cfg); err != nil {
			return nil, err
		}
	}
	o.logger.WithFields(logrus.Fields{
		"primary":   p.NumPrimary(),
		"secondary": p.NumSecondary(),
		"options":   p.NumOptions(),
		"elapsed":   time.Since(start),
	}).Infof("loaded %s", path)
	for _, rej := range p.Rejected() {
		o.logger.Warnf("dropped option %d: repeats item %q", rej.Option, rej.Item)
	}
	return p, nil
}

func newSolveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Enumerate solutions of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.readProblem(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			it := p.Iter()
			defer it.Stop()

			found := 0
			for {
				sol, ok := it.Next()
				if !ok {
					break
				}
				found++
				printSolution(p, sol, o.quiet)
				if o.max > 0 && found >= o.max {
					break
				}
			}

			stats := it.Stats()
			o.logger.WithFields(logrus.Fields{
				"solutions": found,
				"nodes":     stats.Nodes,
				"covers":    stats.Covers,
				"conflicts": stats.Conflicts,
				"depth":     stats.MaxDepth,
				"elapsed":   time.Since(start),
			}).Info("search finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&o.max, "max", 0, "stop after this many solutions (0 = all)")
	cmd.Flags().BoolVar(&o.quiet, "quiet", false, "print option indices only")
	return cmd
}

func printSolution(p *xcover.Problem, sol []int, quiet bool) {
	parts := make([]string, len(sol))
	for i, opt := range sol {
		parts[i] = strconv.Itoa(opt)
	}
	fmt.Println(strings.Join(parts, " "))
	if quiet {
		return
	}
	for _, opt := range sol {
		fmt.Printf("  %d: %s\n", opt, strings.Join(p.OptionTokens(opt), " "))
	}
}

func newCountCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Count solutions of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.readProblem(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			if o.zdd {
				z := p.BuildZDD()
				o.logger.WithFields(logrus.Fields{
					"nodes":   len(z.Nodes()),
					"elapsed": time.Since(start),
				}).Info("diagram built")
				fmt.Println(z.Count().String())
				return nil
			}

			count := 0
			for range p.Solutions() {
				count++
			}
			o.logger.WithField("elapsed", time.Since(start)).Info("search finished")
			fmt.Println(count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&o.zdd, "zdd", false, "count through a solution-set decision diagram")
	return cmd
}

func newVerifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE OPTION...",
		Short: "Check that the given option indices form a solution",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.readProblem(args[0])
			if err != nil {
				return err
			}
			sol := make([]int, 0, len(args)-1)
			for _, a := range args[1:] {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("option index %q: %w", a, err)
				}
				sol = append(sol, n)
			}
			if err := p.VerifySolution(sol); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}
