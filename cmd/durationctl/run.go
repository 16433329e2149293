package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oursky/isoduration/pkg/api"
	"github.com/oursky/isoduration/pkg/client"
	"github.com/oursky/isoduration/pkg/isoduration"
	"github.com/oursky/isoduration/pkg/utils/tomltypes"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const usage = `usage: durationctl [flags] parse VALUE...
       durationctl [flags] format SECONDS [NANOS]`

var errUsage = errors.New(usage)

type options struct {
	url     string
	authKey string
	rps     float64
	timeout isoduration.Duration
	output  string
}

func run(logger *zap.Logger, args []string, stdout io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet("durationctl", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.url, "url", "", "conversion API URL; values are converted locally when empty")
	fs.StringVar(&opts.authKey, "key", "", "conversion API key")
	fs.Float64Var(&opts.rps, "rps", 10, "API request rate limit")
	isoduration.FlagVar(fs, &opts.timeout, "timeout", isoduration.New(10, 0), "API request timeout")
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}
	if fs.NArg() < 1 {
		return errUsage
	}

	conv, err := newConverter(logger, &opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var results []api.Conversion
	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "parse":
		if len(rest) == 0 {
			return errUsage
		}
		results, err = conv.parse(ctx, rest)
	case "format":
		if len(rest) < 1 || len(rest) > 2 {
			return errUsage
		}
		var result api.Conversion
		result, err = conv.format(ctx, rest)
		results = []api.Conversion{result}
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
	if err != nil {
		return err
	}

	if err := write(stdout, opts.output, results); err != nil {
		return err
	}

	failed := lo.CountBy(results, func(c api.Conversion) bool { return c.Error != "" })
	if failed > 0 {
		return fmt.Errorf("%d of %d values rejected", failed, len(results))
	}
	return nil
}

type converter struct {
	logger *zap.Logger
	client *client.Client
}

func newConverter(logger *zap.Logger, opts *options) (*converter, error) {
	c := &converter{logger: logger}
	if opts.url == "" {
		return c, nil
	}

	timeout, err := opts.timeout.Std()
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}
	c.client, err = client.New(&client.Config{
		URL:     opts.url,
		AuthKey: opts.authKey,
		RPS:     &opts.rps,
		Timeout: &tomltypes.Duration{Duration: timeout},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot setup client: %w", err)
	}
	return c, nil
}

func (c *converter) parse(ctx context.Context, values []string) ([]api.Conversion, error) {
	if c.client != nil {
		c.logger.Debug("converting remotely", zap.Int("values", len(values)))
		return c.client.Convert(ctx, values)
	}

	return lo.Map(values, func(value string, _ int) api.Conversion {
		return api.Parse(value)
	}), nil
}

func (c *converter) format(ctx context.Context, args []string) (api.Conversion, error) {
	seconds, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return api.Conversion{}, fmt.Errorf("invalid seconds: %w", err)
	}
	var nanos int64
	if len(args) > 1 {
		if nanos, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return api.Conversion{}, fmt.Errorf("invalid nanos: %w", err)
		}
	}

	d := isoduration.New(seconds, nanos)
	value := isoduration.Format(d)
	if c.client != nil {
		start := time.Now()
		if value, err = c.client.Format(ctx, d); err != nil {
			return api.Conversion{}, err
		}
		c.logger.Debug("formatted remotely", isoduration.StdField("elapsed", time.Since(start)))
	}
	return api.Conversion{Value: value, Duration: &d, Seconds: d.Seconds(), Nanos: d.Nanos()}, nil
}

func write(w io.Writer, format string, results []api.Conversion) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Value, r.Kind, r.Error)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", r.Value, r.Duration, r.Seconds, r.Nanos)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
