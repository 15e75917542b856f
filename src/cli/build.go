// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"github.com/spf13/cobra"
)

// buildFlags holds the flags of the build command.
type buildFlags struct {
	notify   bool
	id       string
	keywords []string
	source   string
	start    int
	width    int
	count    int
	compact  bool
	table    bool
	validate bool
}

func newBuildCommand(opts *options) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build METHOD [ARGS...]",
		Short: "Build a request or notification",
		Long: `Build a JSON-RPC 2.0 request (or notification with --notify).

Positional ARGS are parsed as JSON values when they are valid JSON and used
as strings otherwise. Keyword arguments are given with -k name=value. When
both are present, params is an array of the positional values followed by
one object holding the keywords.`,
		Example: `  jsonrpc-request build sqrt 4
  jsonrpc-request build find -k name=Foo
  jsonrpc-request build find Foo -k age=42 --id "Request #1"
  jsonrpc-request build ping --source hex --width 6 --count 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, f, args)
		}),
	}

	cmd.Flags().BoolVarP(&f.notify, "notify", "n", false, "build a notification (no id)")
	cmd.Flags().StringVar(&f.id, "id", "", "explicit request id (JSON number or string)")
	cmd.Flags().StringArrayVarP(&f.keywords, "kw", "k", nil, "keyword argument name=value (repeatable)")
	cmd.Flags().StringVar(&f.source, "source", "", "id source: "+strings.Join(request.SourceKinds, ", "))
	cmd.Flags().IntVar(&f.start, "start", 1, "first id drawn by counter sources")
	cmd.Flags().IntVar(&f.width, "width", defaultHexWidth, "digits per id for the hex source")
	cmd.Flags().IntVarP(&f.count, "count", "c", 1, "number of messages to build")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "print compact JSON")
	cmd.Flags().BoolVar(&f.table, "table", false, "print messages as a markdown table")
	cmd.Flags().BoolVar(&f.validate, "validate", false, "check every message against the JSON-RPC schema")

	return cmd
}

// apply copies explicitly set flags over the loaded configuration.
func (f *buildFlags) apply(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		config.IDSource.Kind = f.source
	}
	if flags.Changed("start") {
		config.IDSource.Start = f.start
	}
	if flags.Changed("width") {
		config.IDSource.Width = f.width
	}
	if flags.Changed("compact") {
		config.Output.Compact = f.compact
	}
	if flags.Changed("validate") {
		config.Output.Validate = f.validate
	}
}

func runBuild(cmd *cobra.Command, opts *options, f *buildFlags, args []string) error {
	if f.count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, f.count)
	}

	config := opts.config
	f.apply(cmd, config)

	src, err := config.NewIDSource()
	if err != nil {
		return err
	}
	builder := request.NewBuilder(src)

	callArgs, err := parseArgs(args[1:], f.keywords)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("id") {
		callArgs = append(callArgs, request.WithID(parseValue(f.id)))
	}

	call := builder.Method(args[0])
	ctx := cmd.Context()

	msgs := make([]request.Message, 0, f.count)
	for range f.count {
		if err := ctx.Err(); err != nil {
			return err
		}

		var msg request.Message
		if f.notify {
			msg, err = call.Notification(callArgs...)
		} else {
			msg, err = call.Request(callArgs...)
		}
		if err != nil {
			return err
		}

		if config.Output.Validate {
			if err := jsonrpc.ValidateMessage(msg); err != nil {
				return err
			}
		}
		msgs = append(msgs, msg)
	}

	opts.debugf("built %d message(s) for %q using id source %q", len(msgs), call.Name(), config.IDSource.Kind)

	if f.table {
		return writeTable(cmd.OutOrStdout(), msgs)
	}
	return writeMessages(cmd.OutOrStdout(), msgs, config.Output.Compact)
}

// parseArgs turns command-line values into builder arguments.
func parseArgs(positional, keywords []string) ([]any, error) {
	out := make([]any, 0, len(positional)+len(keywords))
	for _, p := range positional {
		out = append(out, parseValue(p))
	}
	for _, kw := range keywords {
		name, value, ok := strings.Cut(kw, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeyword, kw)
		}
		out = append(out, request.Keyword(name, parseValue(value)))
	}
	return out, nil
}

// parseValue decodes s as a single JSON value, keeping numbers exact.
// Anything that is not exactly one JSON value is returned as a string.
func parseValue(s string) any {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return s
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return s
	}
	return v
}
