package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/logging"
	"github.com/yourusername/i4/internal/output"
)

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show window manager version and socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, path, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			v, err := c.GetVersion(cmd.Context())
			if err != nil {
				logging.Failure().Str("cmd", "info").Err(err).Msg("failed to get version")
				return fmt.Errorf("failed to get version: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output.JSON {
				return output.PrintJSON(out, struct {
					Socket  string      `json:"socket"`
					Version interface{} `json:"version"`
				}{path, v})
			}

			keyColor.Fprint(out, "Socket: ")
			fmt.Fprintln(out, path)
			keyColor.Fprint(out, "Version: ")
			fmt.Fprintln(out, v.HumanReadable)
			if v.LoadedConfigFileName != "" {
				keyColor.Fprint(out, "Config: ")
				fmt.Fprintln(out, v.LoadedConfigFileName)
			}
			return nil
		},
	}
}

func (a *app) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the raw layout tree as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			raw, err := c.GetTreeRaw(cmd.Context())
			if err != nil {
				logging.Failure().Str("cmd", "dump").Err(err).Msg("failed to get tree")
				return fmt.Errorf("failed to get tree: %w", err)
			}

			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err != nil {
				return fmt.Errorf("malformed tree reply: %w", err)
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
