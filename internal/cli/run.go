package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vvka-141/metsgen/internal/output"
	"github.com/vvka-141/metsgen/internal/pipeline"
	"github.com/vvka-141/metsgen/internal/repository"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// newRunContext returns a context cancelled by SIGINT/SIGTERM.
func newRunContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

// withRunTimeout bounds ctx by the --timeout deadline. Zero leaves it
// unbounded.
func withRunTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// generate wires the repository client, writer and pipeline for cfg and
// runs it under the run deadline.
func generate(
	ctx context.Context,
	cfg metsgen.RunConfig,
	creds metsgen.Credentials,
	logger metsgen.Logger,
	newSource func(*repository.Client) metsgen.DocumentSource,
) error {
	client := repository.NewClient(cfg.RepoURL,
		repository.WithCredentials(creds),
		repository.WithRetries(cfg.Retries),
		repository.WithLogger(logger),
	)

	writer, err := output.NewWriter(cfg.OutputDir, output.WithLogger(logger))
	if err != nil {
		return err
	}

	generator := pipeline.NewService(
		newSource(client),
		repository.NewModelResolver(client, cfg.CacheModels),
		client,
		writer,
		logger,
	)

	runCtx, cancel := withRunTimeout(ctx, cfg.Timeout)
	defer cancel()

	summaries, err := generator.Generate(runCtx, cfg)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("run exceeded --timeout %s: %w", cfg.Timeout, err)
		}
		failed := 0
		for _, s := range summaries {
			if s.Err != nil {
				failed++
			}
		}
		if len(summaries) > 1 {
			return fmt.Errorf("%d of %d nodes failed: %w", failed, len(summaries), err)
		}
		return err
	}
	return nil
}
