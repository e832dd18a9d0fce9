// Package batchplan computes deterministic plans for cutting an integer total
// into ordered, strictly positive batch sizes.
//
// The splitting rules live in the split package as pure functions. This package
// adds a Planner on top: declarative requests, a memoizing cache, structured
// logging, Prometheus metrics and YAML configuration.
//
// # Quick Start
//
//	cfg := batchplan.DefaultConfig()
//	planner, err := batchplan.NewPlanner(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan, err := planner.SplitByCount(50, 8)
//	// plan.Ints() == [7 7 6 6 6 6 6 6]
//
// # Declarative Requests
//
// Every operation is also reachable through a Request naming its Policy, which
// is how YAML request files and the batchplan CLI drive the planner:
//
//	res, err := planner.Plan(batchplan.Request{
//	    Policy:  batchplan.PolicyWeighted,
//	    Total:   100,
//	    Weights: []int64{10, 20, 30, 40},
//	})
//	// res.Batches.Ints() == [10 20 30 40]
//
// # Errors
//
// Rejected requests return a *PlanError carrying the operation, the failing
// parameter and its value. Branch on the kind with errors.Is:
//
//	_, err := planner.SplitByCount(5, 10)
//	if errors.Is(err, batchplan.ErrInfeasibleConstraint) {
//	    // fewer units than batches
//	}
//
// # Observability
//
//	collector := batchplan.NewPrometheusMetrics(prometheus.DefaultRegisterer, "jobs")
//	logger := batchplan.NewSlogLogger(slog.Default())
//	planner, err := batchplan.NewPlanner(&cfg,
//	    batchplan.WithMetrics(collector),
//	    batchplan.WithLogger(logger),
//	)
//
// See the examples/ directory for a complete program and cmd/batchplan for the CLI.
package batchplan
