package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/internal/handlers/savedata/v1alpha1"
)

var (
	blockFile     string
	targetVersion int32
)

var importSaveCmd = &cobra.Command{
	Use:   "import",
	Short: "Upload a save block file for a unit",
	RunE:  runImportSave,
}

var exportSaveCmd = &cobra.Command{
	Use:   "export",
	Short: "Download a unit's stored save block to a file",
	RunE:  runExportSave,
}

var migrateSaveCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite a unit's stored save block under another marker",
	RunE:  runMigrateSave,
}

func init() {
	importSaveCmd.Flags().StringVar(&blockFile, "file", "", "Save block file (required)")
	_ = importSaveCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	exportSaveCmd.Flags().StringVar(&blockFile, "file", "", "Output file (required)")
	_ = exportSaveCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	migrateSaveCmd.Flags().Int32Var(&targetVersion, "version", 0, "Marker to write")
}

func runImportSave(cmd *cobra.Command, _ []string) error {
	block, err := os.ReadFile(blockFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", blockFile, err)
	}

	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{
			v1alpha1.FieldBlock: base64.StdEncoding.EncodeToString(block),
		})
		if err != nil {
			return err
		}

		resp, err := client.ImportSave(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to import save: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bytes\n\n", len(block))
		printSlots(cmd.OutOrStdout(), resp)
		return nil
	})
}

func runExportSave(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{})
		if err != nil {
			return err
		}

		resp, err := client.ExportSave(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to export save: %w", err)
		}

		if err := os.WriteFile(blockFile, resp.GetValue(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", blockFile, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", len(resp.GetValue()), blockFile)
		return nil
	})
}

func runMigrateSave(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{
			v1alpha1.FieldTargetVersion: targetVersion,
		})
		if err != nil {
			return err
		}

		resp, err := client.MigrateSave(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to migrate save: %w", err)
		}

		fields := resp.GetFields()
		fmt.Fprintf(cmd.OutOrStdout(), "Migrated marker %d -> %d\n\n",
			int32(fields[v1alpha1.FieldFromVersion].GetNumberValue()),
			int32(fields[v1alpha1.FieldToVersion].GetNumberValue()))
		printSlots(cmd.OutOrStdout(), resp)
		return nil
	})
}
