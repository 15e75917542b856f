// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/jsonrpc-request/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/jsonrpc-request/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrInvalidKeyword indicates a keyword argument not written as name=value.
	ErrInvalidKeyword = errors.New("cli: keyword argument must be name=value")

	// ErrInvalidCount indicates a non-positive --count.
	ErrInvalidCount = errors.New("cli: count must be positive")
)

// options holds flags shared by every command.
type options struct {
	configPath string
	logFormat  string
	verbose    bool

	// resolved before a command runs
	config *Config
	log    logger.Logger
}

// Execute runs the root command with the process arguments, handling any
// errors that occur during execution. Diagnostics go to log unless the
// configuration selects JSON logging.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewCommand(version, log)
	cmd.SetArgs(os.Args[1:])
	return cmd.ExecuteContext(ctx)
}

// NewCommand returns the root command. Payloads are written to the command's
// output stream and diagnostics to log.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{log: log}

	rootCmd := &cobra.Command{
		Use:           posix.ExecutableName(os.Args, "jsonrpc-request"),
		Short:         "Build canonical JSON-RPC 2.0 requests and notifications",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.json, .yaml, .yml); defaults to $"+ConfigFileEnv)
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "diagnostic log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		newBuildCommand(opts),
		newCanonicalizeCommand(opts),
		newValidateCommand(opts),
	)

	return rootCmd
}

// resolve loads the configuration and picks the diagnostic logger.
func (o *options) resolve(cmd *cobra.Command) error {
	config, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-format") {
		config.Log.Format = o.logFormat
	}
	o.config = config

	if config.Log.Format == "json" || o.log == nil {
		o.log = logger.New(config.Log.Format, cmd.ErrOrStderr())
	}
	return nil
}

// debugf logs only in verbose mode.
func (o *options) debugf(format string, v ...any) {
	if o.verbose {
		o.log.Printf(format, v...)
	}
}

// errorf logs a failed command in verbose mode. JSON entries carry level
// "error".
func (o *options) errorf(cmd *cobra.Command, err error) {
	if !o.verbose || o.log == nil {
		return
	}
	log := o.log
	if j, ok := log.(*logger.JSONLogger); ok {
		log = j.WithLevel("error")
	}
	log.Printf("%s: %v", cmd.CommandPath(), err)
}

// runE wraps a command body so its error is logged before cobra returns it.
func (o *options) runE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			o.errorf(cmd, err)
		}
		return err
	}
}

// readInput reads the file named by args[0], or r when args is empty or "-".
func readInput(args []string, r io.Reader) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
