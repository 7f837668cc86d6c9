package cmd

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/report"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

var nthCmd = &cobra.Command{
	Use:   "nth K [K...]",
	Short: "Show the K-th prime",
	Long: `Nth prints the K-th prime for every argument, counting from 1
(so "nth 1" is 2). The sieve is sized for the largest K requested.

Example:
  primesieve nth 1 5 1000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNth,
}

func init() {
	rootCmd.AddCommand(nthCmd)
}

func runNth(cmd *cobra.Command, args []string) error {
	ks, err := parseNumbers(args)
	if err != nil {
		return err
	}
	if slices.Contains(ks, 0) {
		return fmt.Errorf("prime ordinals start at 1")
	}
	if top := slices.Max(ks); top > math.MaxInt {
		return fmt.Errorf("prime ordinal %d is too large (max %d)", top, math.MaxInt)
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = sess.log.Sync() }()

	sv, err := sieve.NewForCount(int(slices.Max(ks)), sess.options()...)
	if err != nil {
		return fmt.Errorf("failed to build sieve: %w", err)
	}

	results := report.NewResults()
	for _, k := range ks {
		key := strconv.FormatUint(k, 10)
		if results.Seen(key) {
			continue
		}
		p, ok := sv.NthPrime(int(k - 1))
		if !ok {
			return fmt.Errorf("sieve to %d holds only %d primes", sv.Limit(), sv.Len())
		}
		results.Add(key, []string{key, sess.out.Emph(strconv.FormatUint(p, 10))})
	}

	sess.out.Header("Nth prime")
	sess.out.Table([]string{"k", "prime"}, results.Rows())
	return nil
}
