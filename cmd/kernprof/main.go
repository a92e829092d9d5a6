// Command kernprof benchmarks every registered kernel implementation and
// reports per-implementation throughput, marking the one runtime dispatch
// selects on this host.
//
// Usage:
//
//	kernprof [flags]
//
// Examples:
//
//	kernprof
//	kernprof -vlen 4096
//	kernprof -kernel pack
//	kernprof -impl avx2
//	kernprof -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/xyproto/env/v2"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/puppet"
)

func main() {
	vlen := flag.Int("vlen", env.Int("KERNPROF_VLEN", 131071), "units per kernel invocation")
	dur := flag.Duration("time", 200*time.Millisecond, "minimum measurement time per implementation")
	kernelFilter := flag.String("kernel", "", "only profile kernels whose name contains this substring")
	implFilter := flag.String("impl", "", "only profile implementations whose name contains this substring")
	list := flag.Bool("list", false, "list kernels and implementations without profiling")
	noVerify := flag.Bool("noverify", false, "skip the equivalence check before profiling")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernprof [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks every registered kernel implementation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernprof -vlen 4096\n")
		fmt.Fprintf(os.Stderr, "  kernprof -kernel pack -impl ssse3\n")
		fmt.Fprintf(os.Stderr, "  kernprof -list\n")
	}
	flag.Parse()

	if *vlen <= 0 {
		fmt.Fprintf(os.Stderr, "error: -vlen must be positive\n")
		os.Exit(1)
	}

	features := cpu.DetectFeatures()
	fmt.Printf("cpu: %s (%s)\n\n", features.Architecture, featureSummary(features))

	catalog := filterCatalog(puppet.Catalog(), *kernelFilter)
	if len(catalog) == 0 {
		fmt.Fprintf(os.Stderr, "error: no kernels match %q\n", *kernelFilter)
		os.Exit(1)
	}

	if *list {
		printList(catalog, *implFilter)
		return
	}

	if !*noVerify {
		for _, k := range catalog {
			if err := k.Verify(*vlen, 1); err != nil {
				fmt.Fprintf(os.Stderr, "error: equivalence check failed: %v\n", err)
				os.Exit(1)
			}
		}
	}

	profile(catalog, *vlen, *dur, *implFilter)
}

func featureSummary(f cpu.Features) string {
	var tags []string
	for lvl := cpu.SIMDRVVSeg; lvl > cpu.SIMDNone; lvl-- {
		if cpu.Supports(f, lvl) {
			tags = append(tags, lvl.String())
		}
	}
	if len(tags) == 0 {
		return "generic only"
	}
	return strings.Join(tags, " ")
}

func filterCatalog(catalog []puppet.Kernel, filter string) []puppet.Kernel {
	if filter == "" {
		return catalog
	}
	var out []puppet.Kernel
	for _, k := range catalog {
		if strings.Contains(k.Name, filter) {
			out = append(out, k)
		}
	}
	return out
}

func printList(catalog []puppet.Kernel, implFilter string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tImplementation\tLevel\tAlign\tPriority\n")
	fmt.Fprintf(tw, "------\t--------------\t-----\t-----\t--------\n")
	for _, k := range catalog {
		for _, info := range k.Impls() {
			if implFilter != "" && !strings.Contains(info.Name, implFilter) {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
				k.Name, info.Name, info.Level, info.Align, info.Priority)
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func profile(catalog []puppet.Kernel, vlen int, minTime time.Duration, implFilter string) {
	features := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tImplementation\tLevel\tns/call\tMunits/s\t\n")
	fmt.Fprintf(tw, "------\t--------------\t-----\t-------\t--------\t\n")

	for _, k := range catalog {
		out, in := k.Buffers(vlen)
		selected := selectedName(k, features)

		for _, info := range k.Impls() {
			if implFilter != "" && !strings.Contains(info.Name, implFilter) {
				continue
			}

			perCall, err := measure(k, info.Name, out, in, vlen, minTime)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %s/%s: %v\n", k.Name, info.Name, err)
				continue
			}

			rate := float64(vlen) / perCall.Seconds() / 1e6
			mark := ""
			if info.Name == selected {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%.1f\t%s\n",
				k.Name, info.Name, info.Level,
				float64(perCall.Nanoseconds()), rate, mark)
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Println("\n* implementation selected by runtime dispatch on this host")
}

// selectedName returns the implementation name dispatch resolves to: the
// first legal non-aligned entry in priority order.
func selectedName(k puppet.Kernel, features cpu.Features) string {
	for _, info := range k.Impls() {
		if info.Align == kernel.AlignAligned {
			continue
		}
		if cpu.Supports(features, info.Level) {
			return info.Name
		}
	}
	return ""
}

// measure times repeated invocations until minTime has elapsed and returns
// the mean duration of one call.
func measure(k puppet.Kernel, implName string, out, in []byte, vlen int, minTime time.Duration) (time.Duration, error) {
	// Warm up and surface errors before timing.
	if err := k.Run(implName, out, in, vlen); err != nil {
		return 0, err
	}

	var calls int
	var elapsed time.Duration
	for elapsed < minTime {
		batch := 1 + calls // grow batches to amortize clock reads
		start := time.Now()
		for i := 0; i < batch; i++ {
			if err := k.Run(implName, out, in, vlen); err != nil {
				return 0, err
			}
		}
		elapsed += time.Since(start)
		calls += batch
	}
	return elapsed / time.Duration(calls), nil
}
