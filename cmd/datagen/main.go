package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DanielPopoola/ficmart-testdata/internal/card"
	"github.com/DanielPopoola/ficmart-testdata/internal/config"
	"github.com/DanielPopoola/ficmart-testdata/internal/fakedata"
	"github.com/DanielPopoola/ficmart-testdata/internal/payload"
)

// placeholders collects repeated -set name=value flags.
type placeholders map[string]any

func (p placeholders) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (p placeholders) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return errors.New("expected name=value")
	}
	p[strings.TrimSpace(name)] = value
	return nil
}

type options struct {
	cardType string
	count    int
	person   bool
	template string
	values   placeholders
}

func parseFlags(args []string) (*options, error) {
	opts := &options{values: placeholders{}}

	fs := flag.NewFlagSet("datagen", flag.ContinueOnError)
	fs.StringVar(&opts.cardType, "card", "", "card type to generate, e.g. VISA or MAESTRO_18 (default from config)")
	fs.IntVar(&opts.count, "n", 1, "number of card numbers to print")
	fs.BoolVar(&opts.person, "person", false, "print a synthetic person as JSON, or feed one into -template")
	fs.StringVar(&opts.template, "template", "", "JSON payload template with {{name}} placeholders")
	fs.Var(opts.values, "set", "placeholder value as name=value; repeatable")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.count < 1 {
		return nil, fmt.Errorf("-n must be at least 1, got %d", opts.count)
	}
	return opts, nil
}

func run(cfg *config.Config, opts *options, out io.Writer, logger *slog.Logger) error {
	cardType := cfg.DefaultCardType()
	if opts.cardType != "" {
		parsed, err := card.ParseCardType(opts.cardType)
		if err != nil {
			return err
		}
		cardType = parsed
	}

	gen := fakedata.New(cfg.Generator.Seed, cfg.Mailosaur.DomainName)

	var person *fakedata.Person
	if opts.person {
		p, err := gen.Person(cardType)
		if err != nil {
			return err
		}
		person = p
	}

	switch {
	case opts.template != "":
		values := map[string]any{}
		if person != nil {
			values = person.Values()
		}
		for k, v := range opts.values {
			values[k] = v
		}

		body, err := payload.NewRenderer(logger).RenderJSONFile(opts.template, values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, body)
		return err

	case person != nil:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(person)

	default:
		for i := 0; i < opts.count; i++ {
			number, err := gen.CardNumber(cardType)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, number); err != nil {
				return err
			}
		}
		return nil
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	logger.Debug("generating test data",
		"card", opts.cardType,
		"count", opts.count,
		"person", opts.person,
		"template", opts.template,
	)

	if err := run(cfg, opts, os.Stdout, logger); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
