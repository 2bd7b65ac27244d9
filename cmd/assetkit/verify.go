package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/config"
	"github.com/alnah/go-assetkit/internal/resolve"
)

// verifyFailure is one asset that did not pass a check.
type verifyFailure struct {
	Collection string
	ID         string
	Reason     string
}

// verifyReport is the outcome of verifying one collection.
type verifyReport struct {
	Collection string
	Assets     int
	Shadowed   int // file names owned by an earlier asset
	Failures   []verifyFailure
	Duration   time.Duration
}

// runVerify checks every asset of the selected collections concurrently.
func runVerify(ctx context.Context, args []string, env *Environment) error {
	f := &verifyFlags{}
	positional, err := parseFlags(verifyFlagSet(f), args)
	if err != nil {
		return err
	}

	var dirTarget string
	if len(positional) == 1 {
		dirTarget = positional[0]
	}
	if f.common.dir != "" && dirTarget == "" {
		return fmt.Errorf("%w: --dir needs exactly one collection", ErrUsage)
	}

	s, err := openSession(f.common, dirTarget, env)
	if err != nil {
		return err
	}

	workers, err := resolveWorkers(f.workers, s.cfg)
	if err != nil {
		return err
	}

	names := positional
	if len(names) == 0 {
		names = s.registry.Names()
	}

	var collections []*assetkit.Collection
	for _, name := range names {
		c, err := s.collection(name)
		if err != nil {
			return err
		}
		collections = append(collections, c)
	}

	s.logger.Debug().Int("workers", workers).Strs("collections", names).Msg("verifying")

	failed := 0
	for _, c := range collections {
		report, err := verifyCollection(ctx, c, workers)
		if err != nil {
			return err
		}
		printReport(env.Stdout, report, f.common.quiet)
		failed += len(report.Failures)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d asset(s)", ErrVerifyFailed, failed)
	}
	return nil
}

// resolveWorkers picks the worker count. Priority: flag, config, GOMAXPROCS.
func resolveWorkers(flagWorkers int, cfg *config.Config) (int, error) {
	if flagWorkers < 0 || flagWorkers > config.MaxWorkers {
		return 0, fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, flagWorkers, config.MaxWorkers)
	}
	if flagWorkers > 0 {
		return flagWorkers, nil
	}
	if cfg.Verify.Workers > 0 {
		return cfg.Verify.Workers, nil
	}
	// GOMAXPROCS is adjusted by automaxprocs for containers
	return runtime.GOMAXPROCS(0), nil
}

// verifyCollection runs checkAsset for every identifier with at most workers
// checks in flight. Only a canceled context aborts the run.
func verifyCollection(ctx context.Context, c *assetkit.Collection, workers int) (*verifyReport, error) {
	start := time.Now()
	ids := c.ResourceNames()

	report := &verifyReport{Collection: c.Name(), Assets: len(ids)}
	if err := c.Err(); err != nil {
		report.Failures = append(report.Failures, verifyFailure{
			Collection: c.Name(),
			Reason:     err.Error(),
		})
	}

	// One slot per asset: workers write disjoint indexes, no lock needed.
	reasons := make([]string, len(ids))
	shadowed := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reasons[i], shadowed[i] = checkAsset(c, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		if shadowed[i] {
			report.Shadowed++
		}
		if reasons[i] != "" {
			report.Failures = append(report.Failures, verifyFailure{
				Collection: c.Name(),
				ID:         id,
				Reason:     reasons[i],
			})
		}
	}
	report.Duration = time.Since(start)
	return report, nil
}

// checkAsset verifies one identifier: it resolves to itself, its file name
// resolves to an asset with the same file name, and its bytes can be read.
// shadowed is true when the file name belongs to another, earlier asset.
func checkAsset(c *assetkit.Collection, id string) (reason string, shadowed bool) {
	got, ok := c.TryResolve(id)
	if !ok || got != id {
		return fmt.Sprintf("identifier resolves to %q", got), false
	}

	file := resolve.FileKey(strings.TrimPrefix(id, c.Prefix()+"."))
	owner, ok := c.TryResolve(file)
	if !ok {
		return fmt.Sprintf("file name %q does not resolve", file), false
	}
	if owner != id {
		ownerFile := resolve.FileKey(strings.TrimPrefix(owner, c.Prefix()+"."))
		if !strings.EqualFold(ownerFile, file) {
			return fmt.Sprintf("file name %q resolves to %q", file, owner), false
		}
		shadowed = true
	}

	rc, err := c.OpenResolved(id)
	if err != nil {
		return err.Error(), shadowed
	}
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Sprintf("reading: %v", err), shadowed
	}
	return "", shadowed
}

func printReport(w io.Writer, r *verifyReport, quiet bool) {
	for _, f := range r.Failures {
		if f.ID == "" {
			fmt.Fprintf(w, "FAIL %s: %s\n", f.Collection, f.Reason)
			continue
		}
		fmt.Fprintf(w, "FAIL %s: %s\n", f.ID, f.Reason)
	}
	if quiet {
		return
	}

	status := "ok"
	if len(r.Failures) > 0 {
		status = fmt.Sprintf("%d failed", len(r.Failures))
	}
	fmt.Fprintf(w, "%s: %d assets, %s", r.Collection, r.Assets, status)
	if r.Shadowed > 0 {
		fmt.Fprintf(w, ", %d shadowed file name(s)", r.Shadowed)
	}
	fmt.Fprintf(w, " (%s)\n", r.Duration.Round(time.Millisecond))
}
