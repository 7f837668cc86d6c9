package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/report"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

var listDivisors bool

var divisorsCmd = &cobra.Command{
	Use:   "divisors N [N...]",
	Short: "Show divisor count, divisor sum and totient",
	Long: `Divisors prints d(N), sigma(N) and phi(N) for every argument (N >= 2),
optionally listing every divisor.

Example:
  primesieve divisors 12 360
  primesieve divisors --list 28`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDivisors,
}

func init() {
	divisorsCmd.Flags().BoolVar(&listDivisors, "list", false,
		"Also list every divisor")

	rootCmd.AddCommand(divisorsCmd)
}

func runDivisors(cmd *cobra.Command, args []string) error {
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

	headers := []string{"n", "d(n)", "sigma(n)", "phi(n)"}
	if listDivisors {
		headers = append(headers, "divisors")
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
		sigma, err := f.SumOfDivisors()
		if err != nil {
			return fmt.Errorf("failed to sum divisors of %d: %w", n, err)
		}

		sess.log.WithQuery("divisors", n).Debugw("Answered", "sigma", sigma)
		row := []string{
			key,
			strconv.FormatUint(f.NumberOfDivisors(), 10),
			strconv.FormatUint(sigma, 10),
			strconv.FormatUint(f.Totient(), 10),
		}
		if listDivisors {
			divs := f.Divisors()
			parts := make([]string, len(divs))
			for i, d := range divs {
				parts[i] = strconv.FormatUint(d, 10)
			}
			row = append(row, strings.Join(parts, " "))
		}
		results.Add(key, row)
	}

	sess.out.Header("Divisor functions")
	sess.out.Table(headers, results.Rows())
	return nil
}
