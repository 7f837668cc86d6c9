package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/sieve"
)

var orderCmd = &cobra.Command{
	Use:   "order A N",
	Short: "Compute the multiplicative order of A modulo N",
	Long: `Order prints the smallest k > 0 with A^k = 1 (mod N). A and N must be
coprime.

Example:
  primesieve order 10 7`,
	Args: cobra.ExactArgs(2),
	RunE: runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	nums, err := parseNumbers(args)
	if err != nil {
		return err
	}
	a, n := nums[0], nums[1]

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = sess.log.Sync() }()

	sv, err := sess.newSieve()
	if err != nil {
		return err
	}

	k, err := sieve.Retry(sv, sess.cfg.Sieve.MaxGrowths, func(s *sieve.Sieve) (uint64, error) {
		return s.Order(a, n)
	})
	if err != nil {
		return fmt.Errorf("failed to compute order of %d modulo %d: %w", a, n, err)
	}

	sess.log.WithQuery("order", n).Debugw("Answered", "a", a, "order", k, "limit", sv.Limit())

	sess.out.Header("Multiplicative order")
	sess.out.KeyValue("a", a)
	sess.out.KeyValue("n", n)
	sess.out.KeyValue("order", sess.out.Emph(fmt.Sprint(k)))
	return nil
}
