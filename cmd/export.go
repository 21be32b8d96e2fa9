package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/registry"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the current configuration to a file",
	Long:  "Write the current configuration to a file. Paths ending in .yaml or .yml\nare written as YAML, anything else as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := args[0]

		store, err := registry.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		encode := registry.Encode
		switch strings.ToLower(filepath.Ext(dst)) {
		case ".yaml", ".yml":
			encode = registry.EncodeYAML
		}
		b, err := encode(cfg)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(dst); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported configuration to %s\n", dst)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
