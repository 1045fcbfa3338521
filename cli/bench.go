package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cache "github.com/krisalay/lfu-cache"
	"github.com/krisalay/lfu-cache/config"
	"github.com/krisalay/lfu-cache/logging"
	"github.com/krisalay/lfu-cache/types"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Load-test a shared cache from many goroutines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithComponent(cmd.Context(), "bench")

			counters := &types.Counters{}
			c := cache.NewConcurrent(cache.New[string, int](a.cfg.Capacity, a.cfg.PolicyType(), a.engine(counters)))
			defer c.Close()

			return runBench(ctx, cmd.OutOrStdout(), c, counters, a.cfg.Bench)
		},
	}

	cmd.Flags().Int("goroutines", 16, "concurrent workers")
	cmd.Flags().Int("ops", 100000, "operations per worker")
	cmd.Flags().Int("keys", 1024, "distinct keys in the workload")
	return cmd
}

// runBench drives GetOrLoad from bc.Goroutines workers over a skewed key
// distribution: low-numbered keys come up far more often, which is the
// workload LFU is meant for.
func runBench(
	ctx context.Context,
	w io.Writer,
	c *cache.Concurrent[string, int],
	counters *types.Counters,
	bc config.BenchConfig,
) error {
	log := logging.FromContext(ctx)

	keys := make([]string, bc.Keys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	load := func(_ context.Context, key string) (int, error) {
		return len(key), nil
	}

	log.Info().
		Int("goroutines", bc.Goroutines).
		Int("ops", bc.Ops).
		Int("keys", bc.Keys).
		Int("capacity", c.Capacity()).
		Str("policy", string(c.Policy())).
		Msg("running benchmark")

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < bc.Goroutines; id++ {
		g.Go(func() error {
			for j := 0; j < bc.Ops; j++ {
				if j%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				key := keys[(j*j+id)%len(keys)]
				if _, err := c.GetOrLoad(gctx, key, load); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("benchmark aborted: %w", err)
	}

	duration := time.Since(start)
	totalOps := bc.Goroutines * bc.Ops
	stats := counters.Snapshot()

	fmt.Fprintln(w, "================ RESULTS =================")
	fmt.Fprintf(w, "Policy           : %s\n", c.Policy())
	fmt.Fprintf(w, "Capacity         : %d\n", c.Capacity())
	fmt.Fprintf(w, "Total Operations : %d\n", totalOps)
	fmt.Fprintf(w, "Total Time       : %v\n", duration)
	if s := duration.Seconds(); s > 0 {
		fmt.Fprintf(w, "Throughput       : %.2f ops/sec\n", float64(totalOps)/s)
	}
	fmt.Fprintf(w, "Hits             : %d\n", stats.Hits)
	fmt.Fprintf(w, "Misses           : %d\n", stats.Misses)
	fmt.Fprintf(w, "Evictions        : %d\n", stats.Evictions)
	fmt.Fprintf(w, "Hit Ratio        : %.4f\n", stats.HitRatio())
	fmt.Fprintln(w, "=========================================")
	return nil
}
