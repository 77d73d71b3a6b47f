package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nais/jaws-deploy/internal/config"
	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/logger"
	"github.com/nais/jaws-deploy/internal/metrics"
	"github.com/nais/jaws-deploy/internal/poller"
	"github.com/nais/jaws-deploy/internal/release"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

const (
	exitOK         = 0
	exitValidation = 1
	exitUsage      = 2
	exitFailure    = 3
)

var version = "dev"

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv config.LookupEnv) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	case "version", "--version":
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	cmd, ok := commandByName(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		if s := suggest(args[0]); s != "" {
			fmt.Fprintf(stderr, "did you mean %q?\n", s)
		}
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jaws-deploy %s %s\n\n%s\n\nFlags:\n", cmd.name, cmd.args, cmd.summary)
		fs.PrintDefaults()
	}
	action := cmd.setup(fs)

	cfg, err := config.New(fs, args[1:], lookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logrus.SetOutput(stderr)
	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	provider, err := metrics.NewProvider()
	if err != nil {
		log.WithError(err).Error("setting up metrics")
		return exitFailure
	}
	defer func() {
		if cfg.MetricsFile == "" {
			return
		}
		if err := provider.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Warn("writing metrics")
		}
	}()

	m, err := metrics.New(provider.Meter())
	if err != nil {
		log.WithError(err).Error("creating metrics")
		return exitFailure
	}

	client, err := jaws.New(cfg.JawsConfig(), m.Errors, log.WithField("client", "jaws"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log = log.WithField("correlation_id", client.CorrelationID())

	p := poller.New(client, log.WithField("component", "poller"),
		poller.WithInterval(cfg.Poll.Interval),
		poller.WithTimeout(cfg.Poll.Timeout),
		poller.WithMetrics(m),
	)

	result, err := action(ctx, &deps{
		cfg:          cfg,
		client:       client,
		orchestrator: release.New(client, p, log.WithField("component", "orchestrator")),
		args:         fs.Args(),
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return exitUsage
		}
		return exitFailure
	}

	if err := render(stdout, cfg.Output, result); err != nil {
		log.WithError(err).Error("rendering result")
		return exitFailure
	}

	if r, ok := result.(*release.Result); ok && r.Waited() {
		if err := r.Validate(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitValidation
		}
	}

	return exitOK
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return nil
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: jaws-deploy <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-16s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "  %-16s %s\n", "version", "Print the version")
	fmt.Fprintf(w, "\nRun 'jaws-deploy <command> --help' for the flags of a command.\n")
}

// suggest returns the command closest to name, or the empty string if none is close.
func suggest(name string) string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", 3
	for _, n := range names {
		if d := fuzzy.LevenshteinDistance(name, n); d < bestDistance {
			best, bestDistance = n, d
		}
	}
	return best
}
