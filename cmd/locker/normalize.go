package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lancelocker.dev/internal/services"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the locker document with every default applied",
		Long: `The normalize command loads the locker document the same way the server
does (falling back to the built-in example when it is missing or malformed),
fills in derived ids and empty fields, and writes the result as indented JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locker := services.LoadLocker(a.cfg.Locker.Path, a.logger)

			data, err := json.MarshalIndent(locker, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal locker: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("wrote normalized locker",
				zap.String("path", out),
				zap.Int("projects", len(locker.Projects)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
