package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	cache "github.com/krisalay/lfu-cache"
)

type demoStep struct {
	op         string
	key, value int
}

// demoSteps is the classic capacity-2 LFU walkthrough.
var demoSteps = []demoStep{
	{"put", 1, 1},
	{"put", 2, 2},
	{"get", 1, 0},
	{"put", 3, 3},
	{"get", 2, 0},
	{"get", 3, 0},
	{"put", 4, 4},
	{"get", 1, 0},
	{"get", 3, 0},
	{"get", 4, 0},
}

const demoCapacity = 2

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the capacity-2 walkthrough and print every call",
		Long: `Run a fixed sequence of put/get calls against a capacity-2 cache and print
each result. --policy and --count-updates apply; --capacity does not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cache.New[int, int](demoCapacity, a.cfg.PolicyType(), a.engine(nil))
			runDemo(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func runDemo(w io.Writer, c *cache.Cache[int, int]) {
	fmt.Fprintf(w, "policy=%s capacity=%d\n", c.Policy(), c.Capacity())

	for _, s := range demoSteps {
		switch s.op {
		case "put":
			c.Put(s.key, s.value)
			fmt.Fprintf(w, "put(%d, %d)\n", s.key, s.value)
		case "get":
			if v, ok := c.Get(s.key); ok {
				fmt.Fprintf(w, "get(%d) = %d\n", s.key, v)
			} else {
				fmt.Fprintf(w, "get(%d) = %s\n", s.key, notFound)
			}
		}
	}

	fmt.Fprintf(w, "eviction order: %v\n", c.Keys())
}
