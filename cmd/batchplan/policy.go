package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/batchplan"
)

// requestFlags holds the raw flag values of a policy subcommand.
type requestFlags struct {
	req     batchplan.Request
	batches []int
}

// binder registers the flags a policy reads.
type binder func(fs *pflag.FlagSet, rf *requestFlags)

type policyCommand struct {
	policy batchplan.Policy
	short  string
	flags  []binder
}

func total(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.Total, "total", 0, "quantity to split")
}

func batchSize(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.BatchSize, "batch-size", 0, "fixed batch size")
}

func minBatchSize(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.MinBatchSize, "min-batch-size", 0, "smallest allowed batch size")
}

func maxBatchSize(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.MaxBatchSize, "max-batch-size", 0, "largest allowed batch size")
}

func targetBatchSize(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.TargetBatchSize, "target-batch-size", 0, "desired average batch size")
}

func numBatches(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.NumBatches, "num-batches", 0, "exact number of batches")
}

func batchRange(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.MinBatches, "min-batches", 0, "smallest batch count to consider")
	fs.IntVar(&rf.req.MaxBatches, "max-batches", 0, "largest batch count to consider")
}

func mergeCount(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntVar(&rf.req.MergeCount, "merge-count", 0, "number of consecutive batches to merge")
}

func weights(fs *pflag.FlagSet, rf *requestFlags) {
	fs.Int64SliceVar(&rf.req.Weights, "weights", nil, "comma-separated non-negative weights")
}

func inputBatches(fs *pflag.FlagSet, rf *requestFlags) {
	fs.IntSliceVar(&rf.batches, "batches", nil, "comma-separated existing batch sizes")
}

var policyCommands = []policyCommand{
	{batchplan.PolicyEven, "Equal batches no larger than --max-batch-size", []binder{total, maxBatchSize}},
	{batchplan.PolicyUneven, "Full batches of --max-batch-size plus one smaller tail", []binder{total, maxBatchSize}},
	{batchplan.PolicyByCount, "Exactly --num-batches balanced batches", []binder{total, numBatches}},
	{batchplan.PolicyWithRemainder, "Full batches of --batch-size and the remainder", []binder{total, batchSize}},
	{batchplan.PolicyWeighted, "Batches proportional to --weights", []binder{total, weights}},
	{batchplan.PolicyRange, "Contiguous offset ranges sized within [min, max]", []binder{total, minBatchSize, maxBatchSize}},
	{batchplan.PolicyOptimize, "Most even plan with a batch count in [min, max]", []binder{total, batchRange}},
	{batchplan.PolicyMinBatch, "Batches of at most max with no batch below min", []binder{total, maxBatchSize, minBatchSize}},
	{batchplan.PolicyNearest, "Batch count whose average is closest to the target", []binder{total, targetBatchSize}},
	{batchplan.PolicyMerge, "Merge every --merge-count consecutive --batches", []binder{inputBatches, mergeCount}},
	{batchplan.PolicyRebalance, "Redistribute --batches evenly", []binder{inputBatches}},
	{batchplan.PolicyConfigurations, "Enumerate fixed batch sizes within [min, max]", []binder{total, minBatchSize, maxBatchSize}},
}

func newPolicyCmd(flags *globalFlags, spec policyCommand) *cobra.Command {
	rf := &requestFlags{}

	cmd := &cobra.Command{
		Use:   string(spec.policy),
		Short: spec.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := rf.req
			req.Policy = spec.policy
			if rf.batches != nil {
				plan, err := batchplan.NewPlan(rf.batches)
				if err != nil {
					return fmt.Errorf("--batches: %w", err)
				}
				req.Batches = plan
			}

			planner, err := newPlanner(cmd, flags)
			if err != nil {
				return err
			}

			res, err := planner.Plan(req)
			if err != nil {
				return err
			}

			return writeOutput(cmd, flags.output, res)
		},
	}

	for _, bind := range spec.flags {
		bind(cmd.Flags(), rf)
	}

	return cmd
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute every request of a YAML request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reqs, err := batchplan.LoadRequests(path)
			if err != nil {
				return err
			}

			planner, err := newPlanner(cmd, flags)
			if err != nil {
				return err
			}

			results, err := planner.PlanAll(reqs)
			if err != nil {
				return err
			}

			return writeOutput(cmd, flags.output, results)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "path to the YAML request file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List supported policies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range batchplan.Policies() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}
}
