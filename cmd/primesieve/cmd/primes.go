package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/sieve"
)

// primesPerRow is how many primes a table row holds.
const primesPerRow = 10

var primesCount int

var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "List primes up to a limit or the first N primes",
	Long: `Primes sieves up to the configured limit (or --limit) and lists every
prime found. With --count the sieve is sized to hold at least that many
primes and exactly that many are listed.

Example:
  primesieve primes --limit 100
  primesieve primes --count 25`,
	Args: cobra.NoArgs,
	RunE: runPrimes,
}

func init() {
	primesCmd.Flags().IntVarP(&primesCount, "count", "n", 0,
		"List the first N primes instead of primes up to the limit")

	rootCmd.AddCommand(primesCmd)
}

func runPrimes(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = sess.log.Sync() }()

	var sv *sieve.Sieve
	if primesCount > 0 {
		sv, err = sieve.NewForCount(primesCount, sess.options()...)
	} else {
		sv, err = sieve.New(sess.cfg.Sieve.InitialLimit, sess.options()...)
	}
	if err != nil {
		return fmt.Errorf("failed to build sieve: %w", err)
	}

	want := sv.Len()
	if primesCount > 0 {
		want = primesCount
	}

	var rows [][]string
	var row []string
	for i, p := range sv.Indexed() {
		if i == want {
			break
		}
		row = append(row, strconv.FormatUint(p, 10))
		if len(row) == primesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if primesCount > 0 {
		sess.out.Header("First %d primes", want)
	} else {
		sess.out.Header("Primes up to %d", sv.Limit())
	}
	sess.out.KeyValue("Limit", sv.Limit())
	sess.out.KeyValue("Count", want)
	sess.out.Section("Primes")
	sess.out.Table(nil, rows)
	return nil
}
