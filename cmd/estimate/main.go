package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"deliverydate/cmd"
	"deliverydate/internal/core/application/usecases/commands"
	"deliverydate/internal/core/application/usecases/queries"
	"deliverydate/internal/core/domain/model/kernel"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/signals"
	"github.com/labstack/gommon/log"
)

type options struct {
	state  string
	rush   bool
	placed string
	watch  bool
	table  bool
}

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))

	if err = run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, config, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("estimate: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer, config cmd.Config) (options, error) {
	var opts options

	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.state, "state", config.DeliveryState, "two-letter delivery state code")
	fs.BoolVar(&opts.rush, "rush", config.RushDelivery, "use rush lead times")
	fs.StringVar(&opts.placed, "placed", "", "placement date as YYYY-MM-DD, defaults to today")
	fs.BoolVar(&opts.watch, "watch", false, "log an estimate on the announcement schedule until interrupted")
	fs.BoolVar(&opts.table, "table", false, "print the lead-time tables")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: estimate [flags]\n%s", flags.Defaults(fs))
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, config cmd.Config, logger *slog.Logger) error {
	opts, err := parseFlags(args, stderr, config)
	if err != nil {
		return err
	}

	config.DeliveryState = opts.state
	config.RushDelivery = opts.rush

	app := cmd.NewCompositionRoot(config, logger)
	ctx = app.Context(ctx)

	switch {
	case opts.table:
		return printLeadTimes(ctx, app, stdout)
	case opts.watch:
		return watch(ctx, app, logger)
	default:
		return placeOrder(ctx, app, opts.placed, config, stdout)
	}
}

func placeOrder(ctx context.Context, app cmd.CompositionRoot, placed string, config cmd.Config, stdout io.Writer) error {
	placedOn := kernel.NewManagedDateNow()
	if placed != "" {
		var err error
		if placedOn, err = kernel.ParseManagedDate(placed); err != nil {
			return err
		}
	}

	placeOrderCmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), config.DeliveryState, placedOn, config.Speed())
	if err != nil {
		return err
	}

	handler := app.CreatePlaceOrderCommandHandler()
	s, err := handler.Handle(ctx, placeOrderCmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, s.Summary())
	return err
}

func printLeadTimes(ctx context.Context, app cmd.CompositionRoot, stdout io.Writer) error {
	handler := app.CreateGetLeadTimesQueryHandler()
	tables, err := handler.Handle(ctx, queries.NewGetLeadTimesQuery())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SPEED\tSTATE\tDAYS")
	for _, table := range []queries.LeadTimeTable{tables.Regular, tables.Rush} {
		for _, entry := range table.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", table.Speed, entry.State, entry.Days)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", table.Speed, "*", table.FallbackDays)
	}
	return tw.Flush()
}

func watch(ctx context.Context, app cmd.CompositionRoot, logger *slog.Logger) error {
	ctx, wait := signals.NotifyWithCancel(ctx, signals.Defaults()...)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	sig := wait.WaitForSignal()
	logger.InfoContext(ctx, "Stopping", "signal", sig.String())
	return nil
}
