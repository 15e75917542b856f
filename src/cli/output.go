// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// writeMessages prints one message per line.
func writeMessages(w io.Writer, msgs []request.Message, compact bool) error {
	for _, msg := range msgs {
		data, err := msg.MarshalJSON()
		if err != nil {
			return err
		}
		if !compact {
			data = request.Spaced(data)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// writeTable renders messages as a markdown table, one row per message.
// Notifications show "-" in the id column.
func writeTable(w io.Writer, msgs []request.Message) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "jsonrpc", "method", "params", "id"})

	rows := make([][]string, 0, len(msgs))
	for i, msg := range msgs {
		version, _ := msg.Get(request.KeyJSONRPC)

		params := ""
		if p, ok := msg.Params(); ok {
			cell, err := jsonCell(p)
			if err != nil {
				return err
			}
			params = cell
		}

		id := "-"
		if v, ok := msg.ID(); ok {
			cell, err := jsonCell(v)
			if err != nil {
				return err
			}
			id = cell
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprint(version),
			msg.Method(),
			params,
			id,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func jsonCell(v any) (string, error) {
	data, err := request.MarshalValue(v)
	if err != nil {
		return "", err
	}
	return string(request.Spaced(data)), nil
}
