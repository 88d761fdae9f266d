// procsnap inspects the OpenBSD process table: it lists processes with
// their command lines, prints a single process's argument vector, and
// answers liveness queries, all through the kernel's sysctl query ABI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"procsnap/internal/config"
	"procsnap/internal/filter"
	"procsnap/internal/otel"
	"procsnap/internal/output"
	"procsnap/proc"
)

// Version information injected by GoReleaser at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errNotAlive maps the alive command's negative answer to exit status 1.
var errNotAlive = errors.New("not alive")

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errNotAlive) {
			os.Exit(1)
		}
		log.Fatalf("Error: %v", err)
	}
}

// setupTelemetry returns a tracer and cleanup function. Tracing is off by
// default; without --trace the tracer is a no-op and nothing is exported.
func setupTelemetry(cfg *config.Config) (trace.Tracer, func(), error) {
	if !cfg.Trace {
		return noop.NewTracerProvider().Tracer("procsnap"), func() {}, nil
	}

	otelCfg, err := config.ParseOTELConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse OTEL config: %w", err)
	}

	tp, err := otel.InitProvider(otelCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize OTEL provider: %w", err)
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otel.ShutdownProvider(tp, shutdownCtx); err != nil {
			log.Printf("Error shutting down OTEL provider: %v", err)
		}
	}

	return tp.Tracer("procsnap"), cleanup, nil
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("procsnap %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	tracer, cleanup, err := setupTelemetry(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ins := proc.New()

	switch cfg.Command {
	case config.CmdList:
		return runList(ins, cfg, tracer)
	case config.CmdArgs:
		return runArgs(ins, cfg.Pid, tracer)
	case config.CmdAlive:
		return runAlive(ins, cfg.Pid)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// runList snapshots the process table and prints one row per process. A pid
// vanishing between the snapshot and its argv fetch is normal churn and the
// row is dropped; a permission failure is classified and annotated instead
// of aborting the listing.
func runList(ins *proc.Inspector, cfg *config.Config, tracer trace.Tracer) error {
	var flt *filter.Filter
	if cfg.FilterExpr != "" {
		var err error
		flt, err = filter.Compile(cfg.FilterExpr)
		if err != nil {
			return err
		}
	}

	ctx, span := tracer.Start(context.Background(), "proc.snapshot")
	table, err := ins.Snapshot()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return err
	}
	span.SetAttributes(attribute.Int("proc.count", table.Len()))
	span.End()

	_, listSpan := tracer.Start(ctx, "proc.list")
	defer listSpan.End()

	var rows []output.Row
	for i := range table.Procs {
		rec := &table.Procs[i]
		row := output.Row{Pid: rec.Pid, Comm: rec.Command()}

		argv, err := ins.FetchArgv(rec.Pid)
		switch {
		case err == nil:
			row.Cmdline = strings.Join(argv, " ")
		case errors.Is(err, proc.ErrNoSuchProcess):
			continue // exited since the snapshot
		default:
			cerr := classifyKernelFailure(ins, rec.Pid, err)
			if errors.Is(cerr, proc.ErrNoSuchProcess) {
				continue
			}
			if errors.Is(cerr, proc.ErrAccessDenied) {
				row.Note = "access denied"
			} else {
				row.Note = "unavailable"
			}
		}

		if flt != nil {
			matched, err := flt.Match(filter.Process{
				Pid:     int(row.Pid),
				Comm:    row.Comm,
				Args:    argv,
				Cmdline: row.Cmdline,
			})
			if err != nil {
				log.Printf("Warning: filter failed for pid %d: %v", row.Pid, err)
				continue
			}
			if !matched {
				continue
			}
		}

		rows = append(rows, row)
	}

	listSpan.SetAttributes(attribute.Int("proc.rows", len(rows)))
	output.WriteTable(os.Stdout, rows)
	return nil
}

func runArgs(ins *proc.Inspector, pid int32, tracer trace.Tracer) error {
	_, span := tracer.Start(context.Background(), "proc.fetch_argv",
		trace.WithAttributes(attribute.Int("proc.pid", int(pid))))
	defer span.End()

	argv, err := ins.FetchArgv(pid)
	if err != nil {
		err = classifyKernelFailure(ins, pid, err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("cannot read argv of pid %d: %w", pid, err)
	}
	span.SetAttributes(attribute.Int("proc.argc", len(argv)))

	for _, arg := range argv {
		fmt.Println(arg)
	}
	return nil
}

func runAlive(ins *proc.Inspector, pid int32) error {
	if ins.IsAlive(pid) {
		fmt.Printf("pid %d is alive\n", pid)
		return nil
	}
	fmt.Printf("pid %d is not alive\n", pid)
	return errNotAlive
}

// classifyKernelFailure turns a permission-shaped argv failure into the
// proper semantic error via a liveness re-probe. Everything else passes
// through untouched.
func classifyKernelFailure(ins *proc.Inspector, pid int32, err error) error {
	var kerr *proc.KernelError
	if errors.As(err, &kerr) && kerr.Errno == syscall.EPERM {
		return ins.ClassifyFailure(pid)
	}
	return err
}
