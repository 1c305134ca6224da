package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	kernels "github.com/num-bench/num-bench/kernels"
)

var (
	// CLI flags shared by the kernel subcommands
	logLevel      string  // Log verbosity level
	sieveBound    int     // Inclusive upper bound N for the prime search
	rawBuffer     bool    // Exercise the caller-owned-buffer entry point
	intervalA     float64 // Lower integration limit
	intervalB     float64 // Upper integration limit
	subdivisions  int     // Number of trapezoid subintervals
	casesFilePath string  // Path to the YAML cases file
)

// samplePrintLimit caps full prime listings on stdout; larger results are
// summarized as count plus largest prime so huge sweeps stay readable.
const samplePrintLimit = 100

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "num-bench",
	Short: "Native numerical kernels (prime sieve, trapezoid quadrature) for cross-language benchmarking hosts",
}

// setupLogging configures the logrus level from the --log flag
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// sieveCmd runs the prime sieve kernel for a single bound
var sieveCmd = &cobra.Command{
	Use:   "sieve",
	Short: "Enumerate every prime <= n",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var primes []int
		if rawBuffer {
			// Caller-owned-buffer path, sized by the documented contract.
			buf := make([]int, kernels.PrimeCountBound(sieveBound))
			count := kernels.SieveInto(sieveBound, buf)
			primes = buf[:count]
		} else {
			primes = kernels.Sieve(sieveBound)
		}

		logrus.Infof("sieve: n=%d found %d primes (raw-buffer=%v)", sieveBound, len(primes), rawBuffer)
		printPrimes(sieveBound, primes)
	},
}

// trapezoidCmd runs the quadrature kernel for a single interval
var trapezoidCmd = &cobra.Command{
	Use:   "trapezoid",
	Short: "Approximate the integral of x^2 over [a, b]",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		estimate := kernels.Trapezoid(intervalA, intervalB, subdivisions)
		logrus.Infof("trapezoid: a=%v b=%v n=%d", intervalA, intervalB, subdivisions)
		fmt.Printf("trapezoid a=%v b=%v n=%d estimate=%.17g\n", intervalA, intervalB, subdivisions, estimate)
	},
}

// runCmd executes every preset case from the YAML cases file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all kernel cases from a cases file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := GetCases(casesFilePath)
		if err != nil {
			logrus.Fatalf("unable to read cases config; %v", err)
		}
		logrus.Infof("loaded %d sieve cases and %d trapezoid cases from %s",
			len(cfg.Sieve), len(cfg.Trapezoid), casesFilePath)

		for _, c := range cfg.Sieve {
			primes := kernels.Sieve(c.N)
			printPrimes(c.N, primes)
		}
		for _, c := range cfg.Trapezoid {
			estimate := kernels.Trapezoid(c.A, c.B, c.N)
			fmt.Printf("trapezoid a=%v b=%v n=%d estimate=%.17g\n", c.A, c.B, c.N, estimate)
		}

		logrus.Info("All cases complete.")
	},
}

// printPrimes writes a sieve result to stdout for the host to consume.
func printPrimes(n int, primes []int) {
	if len(primes) == 0 {
		fmt.Printf("sieve n=%d count=0 primes=[]\n", n)
		return
	}
	if len(primes) <= samplePrintLimit {
		fmt.Printf("sieve n=%d count=%d primes=%v\n", n, len(primes), primes)
		return
	}
	fmt.Printf("sieve n=%d count=%d largest=%d\n", n, len(primes), primes[len(primes)-1])
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	sieveCmd.Flags().IntVar(&sieveBound, "n", 100000, "Inclusive upper bound for the prime search")
	sieveCmd.Flags().BoolVar(&rawBuffer, "raw-buffer", false, "Use the caller-owned-buffer entry point (SieveInto)")

	trapezoidCmd.Flags().Float64Var(&intervalA, "a", 0.0, "Lower integration limit")
	trapezoidCmd.Flags().Float64Var(&intervalB, "b", 1.0, "Upper integration limit")
	trapezoidCmd.Flags().IntVar(&subdivisions, "n", 1000000, "Number of subintervals")

	runCmd.Flags().StringVar(&casesFilePath, "cases", "cases.yaml", "Path to the YAML cases file")

	rootCmd.AddCommand(sieveCmd)
	rootCmd.AddCommand(trapezoidCmd)
	rootCmd.AddCommand(runCmd)
}
