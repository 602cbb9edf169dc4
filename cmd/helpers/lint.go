package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/logger"
	"github.com/dmitrymomot/helpers/pkg/typecheck"
	"github.com/dmitrymomot/helpers/pkg/validator"
)

// lintRule is one entry of a rules file:
//
//	rules:
//	  - path: "[user][email]"
//	    type: NotEmptyString
//	    caller: signup
type lintRule struct {
	Path   string `mapstructure:"path"`
	Type   string `mapstructure:"type"`
	Caller string `mapstructure:"caller"`
}

type lintRules struct {
	Rules []lintRule `mapstructure:"rules"`
}

var (
	errLintFailed = errors.New("lint failed")
	errStdinTwice = errors.New("document and rules cannot both be read from stdin")
)

func loadRules(raw any) ([]lintRule, error) {
	var set lintRules
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &set,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	for i, r := range set.Rules {
		if r.Path == "" || r.Type == "" {
			return nil, fmt.Errorf("rule %d: path and type are required", i+1)
		}
		if _, err := typecheck.Parse(r.Type); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	return set.Rules, nil
}

func newLintCmd(a *app) *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Check a document against a rules file",
		Long: `lint applies every rule of the rules file to the document and reports all
failures at once. Paths that do not resolve are checked as null, so use
identifiers like NullOrInt for optional entries.`,
		Example: `  helpers lint signup.yaml --rules rules.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			if file == "-" && rulesFile == "-" {
				return errStdinTwice
			}
			ctx := withFile(cmd.Context(), file)

			doc, err := readDocument(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw, err := readDocument(rulesFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			rules, err := loadRules(raw)
			if err != nil {
				return err
			}

			checks := make([]validator.Rule, 0, len(rules))
			for _, r := range rules {
				v, err := a.accessor.Get(doc, access.Expr(r.Path), a.accessOptions(access.IgnoreErrors())...)
				if err != nil {
					return err
				}
				checks = append(checks, typecheck.Rule(r.Path, v, r.Type, typecheck.WithCaller(r.Caller)))
			}

			errs := validator.ExtractValidationErrors(validator.Apply(checks...))
			out := cmd.OutOrStdout()
			for _, e := range errs {
				fmt.Fprintln(out, e.Error())
			}
			a.log.InfoContext(ctx, "lint finished",
				logger.Component("lint"),
				logger.Group("rules",
					slog.Int("total", len(rules)),
					slog.Int("failed", len(errs)),
				),
			)

			if len(errs) > 0 {
				return fmt.Errorf("%w: %d of %d rules failed", errLintFailed, len(errs), len(rules))
			}
			fmt.Fprintf(out, "%d rules passed\n", len(rules))
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML or JSON rules file")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}
