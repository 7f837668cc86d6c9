package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/report"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

var factorCmd = &cobra.Command{
	Use:   "factor N [N...]",
	Short: "Factorise numbers into prime powers",
	Long: `Factor prints the prime factorisation of every argument (N >= 2).
The sieve grows on demand until its limit squared covers the number.

Example:
  primesieve factor 360 1000003 600851475143`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFactor,
}

func init() {
	rootCmd.AddCommand(factorCmd)
}

func runFactor(cmd *cobra.Command, args []string) error {
	ns, err := parseNumbers(args)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = sess.log.Sync() }()

	sv, err := sess.newSieve()
	if err != nil {
		return err
	}

	results := report.NewResults()
	for _, n := range ns {
		key := strconv.FormatUint(n, 10)
		if results.Seen(key) {
			continue
		}
		f, err := sieve.Retry(sv, sess.cfg.Sieve.MaxGrowths, func(s *sieve.Sieve) (sieve.Factorization, error) {
			return s.Factorise(n)
		})
		if err != nil {
			return fmt.Errorf("failed to factorise %d: %w", n, err)
		}
		sess.log.WithQuery("factorise", n).Debugw("Answered", "factors", len(f), "limit", sv.Limit())
		rendered := f.String()
		if len(f) == 1 && f[0].Exponent == 1 {
			rendered = sess.out.Good(rendered)
		}
		results.Add(key, []string{key, rendered})
	}

	sess.out.Header("Factorisation")
	sess.out.Table([]string{"n", "factors"}, results.Rows())
	return nil
}
