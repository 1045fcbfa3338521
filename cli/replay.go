package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cache "github.com/krisalay/lfu-cache"
	api "github.com/krisalay/lfu-cache/api"
)

// ErrBadCommand is returned for a replay line that cannot be run.
var ErrBadCommand = errors.New("bad command")

// notFound is printed for a get that misses.
const notFound = "NOT_FOUND"

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Run put/get/del commands from a file or stdin",
		Long: `Read one command per line and print the result of every get, del and keys:

  put <key> <value>
  get <key>          prints the value or NOT_FOUND
  del <key>          prints true or false
  keys               prints live keys, next eviction victim first

Blank lines and lines starting with # are skipped. With no file, or "-",
commands are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			c := cache.New[string, string](a.cfg.Capacity, a.cfg.PolicyType(), a.engine(nil))
			return runReplay(in, cmd.OutOrStdout(), c)
		},
	}
}

func runReplay(r io.Reader, w io.Writer, c api.Cache[string, string]) error {
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := replayLine(w, c, fields); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

func replayLine(w io.Writer, c api.Cache[string, string], fields []string) error {
	op, args := strings.ToLower(fields[0]), fields[1:]

	want := map[string]int{"put": 2, "get": 1, "del": 1, "keys": 0}
	n, ok := want[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrBadCommand, fields[0])
	}
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadCommand, op, n, len(args))
	}

	switch op {
	case "put":
		c.Put(args[0], args[1])
	case "get":
		if v, ok := c.Get(args[0]); ok {
			fmt.Fprintln(w, v)
		} else {
			fmt.Fprintln(w, notFound)
		}
	case "del":
		fmt.Fprintln(w, c.Remove(args[0]))
	case "keys":
		fmt.Fprintln(w, strings.Join(c.Keys(), " "))
	}
	return nil
}
