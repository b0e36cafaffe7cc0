// Command voteclustctl is the operator/scheduler entry point for the
// opinion-clustering batch job (spec.md §6.3).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opinionmap/voteclust/config"
	"github.com/opinionmap/voteclust/run"
	"github.com/opinionmap/voteclust/store"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "voteclustctl",
		Short:   "Trigger and inspect opinion-clustering runs",
		Version: version,
	}

	rootCmd.AddCommand(triggerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func triggerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Trigger one clustering pass",
		Long: `Trigger one pass of the opinion-clustering pipeline over the votes
currently in the Vote Store.

Exit codes:
  0  run completed
  2  InsufficientVoters
  3  AlreadyRunning
  1  any other error (error kind written to stderr)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			windowDays, _ := cmd.Flags().GetInt("window_days")
			minVoters, _ := cmd.Flags().GetInt("min_voters")
			minVotesPerVoter, _ := cmd.Flags().GetInt("min_votes_per_voter")
			sync, _ := cmd.Flags().GetBool("sync")
			configPath, _ := cmd.Flags().GetString("config")
			votesPath, _ := cmd.Flags().GetString("votes")

			code := runTrigger(triggerArgs{
				windowDays:       windowDays,
				minVoters:        minVoters,
				minVotesPerVoter: minVotesPerVoter,
				sync:             sync,
				configPath:       configPath,
				votesPath:        votesPath,
			})
			os.Exit(code)
			return nil
		},
	}

	cmd.Flags().Int("window_days", 30, "Trailing window of votes to consider, in days")
	cmd.Flags().Int("min_voters", 50, "Minimum distinct voters required to cluster")
	cmd.Flags().Int("min_votes_per_voter", 3, "Minimum votes a voter must have cast to be included")
	cmd.Flags().Bool("sync", true, "Run inline and wait for completion; if false, dispatch and return immediately")
	cmd.Flags().String("config", "", "YAML file overriding the numeric constants in spec.md §4.6")
	cmd.Flags().String("votes", "votes.json", "JSON file backing the Vote Store for this invocation")

	return cmd
}

type triggerArgs struct {
	windowDays       int
	minVoters        int
	minVotesPerVoter int
	sync             bool
	configPath       string
	votesPath        string
}

// runTrigger wires a Coordinator against a file-backed Vote Store and an
// in-memory result Store, executes one pass, and returns the process
// exit code mandated by spec.md §6.3.
func runTrigger(a triggerArgs) int {
	params, err := loadParameters(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	voteStore, err := newFileVoteStore(a.votesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("voteclustctl: %w", err))
		return 1
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("voteclustctl: logger: %w", err))
		return 1
	}
	defer logger.Sync()

	resultStore := store.NewMemoryStore()
	coordinator := run.New(voteStore, resultStore, params.LeaseTTL)
	coordinator.Logger = logger
	coordinator.Metrics = run.NewMetrics(prometheus.NewRegistry())

	if !a.sync {
		go func() {
			if _, err := coordinator.Run(context.Background(), params); err != nil {
				logger.Warn("dispatched run failed", zap.Error(err))
			}
		}()
		fmt.Println("clustering dispatched for asynchronous processing")
		return 0
	}

	published, err := coordinator.Run(context.Background(), params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}

	fmt.Printf("run %s completed: %d voters, %d groups, silhouette %.3f\n",
		published.ID, published.NVoters, published.NGroups, published.Silhouette)
	return 0
}

func loadParameters(a triggerArgs) (config.Parameters, error) {
	params := config.Defaults()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return config.Parameters{}, err
		}
		params = loaded
	}
	params.WindowDays = a.windowDays
	params.MinVoters = a.minVoters
	params.MinVotesPerVoter = a.minVotesPerVoter
	return params, nil
}

// exitCodeFor maps a Run error to the exit codes of spec.md §6.3.
func exitCodeFor(err error) int {
	var rerr *run.Error
	if errors.As(err, &rerr) {
		switch rerr.Kind {
		case run.KindInsufficientVoters:
			return 2
		case run.KindAlreadyRunning:
			return 3
		}
	}
	return 1
}
