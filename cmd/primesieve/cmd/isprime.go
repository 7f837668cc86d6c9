package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/report"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

var isPrimeCmd = &cobra.Command{
	Use:   "isprime N [N...]",
	Short: "Test numbers for primality",
	Long: `Isprime tests every argument for primality. The sieve grows on demand
until its limit squared covers the number, up to --max-growths times.

Example:
  primesieve isprime 97 1000003 4294967291`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIsPrime,
}

func init() {
	rootCmd.AddCommand(isPrimeCmd)
}

func runIsPrime(cmd *cobra.Command, args []string) error {
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
		ok, err := sieve.Retry(sv, sess.cfg.Sieve.MaxGrowths, func(s *sieve.Sieve) (bool, error) {
			return s.IsPrime(n)
		})
		if err != nil {
			return fmt.Errorf("failed to test %d: %w", n, err)
		}
		verdict := sess.out.Bad("composite")
		if ok {
			verdict = sess.out.Good("prime")
		} else if n < 2 {
			verdict = sess.out.Bad("neither")
		}
		sess.log.WithQuery("isprime", n).Debugw("Answered", "prime", ok, "limit", sv.Limit())
		results.Add(key, []string{key, verdict})
	}

	sess.out.Header("Primality")
	sess.out.Table([]string{"n", "result"}, results.Rows())
	return nil
}
