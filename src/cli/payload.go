// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"github.com/spf13/cobra"
)

func newCanonicalizeCommand(opts *options) *cobra.Command {
	var compact, validate bool

	cmd := &cobra.Command{
		Use:   "canonicalize [FILE]",
		Short: "Re-order an existing payload to jsonrpc, method, params, id",
		Long: `Read a JSON-RPC payload from FILE (or stdin when FILE is omitted or "-"),
lowercase its member names, add a missing "jsonrpc" member and print it with
members in canonical order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			msg, err := jsonrpc.Decode(data)
			if err != nil {
				return fmt.Errorf("cli: decode payload: %w", err)
			}

			if validate || opts.config.Output.Validate {
				if err := jsonrpc.ValidateMessage(msg); err != nil {
					return err
				}
			}

			opts.debugf("canonicalized %q with %d member(s)", msg.Method(), msg.Len())
			return writeMessages(cmd.OutOrStdout(), []request.Message{msg}, compact || opts.config.Output.Compact)
		}),
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON")
	cmd.Flags().BoolVar(&validate, "validate", false, "check the result against the JSON-RPC schema")

	return cmd
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a payload against the JSON-RPC request schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := jsonrpc.Validate(data); err != nil {
				return err
			}

			opts.debugf("payload is valid")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		}),
	}
}
