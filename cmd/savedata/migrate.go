package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
)

// offlineUnitID keys the staged block inside the in-memory store
const offlineUnitID = "offline"

var targetVersion int32

var migrateCmd = &cobra.Command{
	Use:   "migrate <in> <out>",
	Short: "Rewrite a save block file under another marker",
	Long: `Decode a save block file in whichever layout it uses and write it back with the given marker.
Blocks written with a positive marker decode to an empty roster, so migrating one keeps no items.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().Int32Var(&targetVersion, "version", int32(accessory.VersionLegacy), "marker to write")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := offlineConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	block, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	svc, release, err := newOfflineService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	ctx := cmd.Context()
	if _, err := svc.ImportBlock(ctx, &savedata.ImportBlockInput{UnitID: offlineUnitID, Block: block}); err != nil {
		return err
	}

	migrated, err := svc.Migrate(ctx, &savedata.MigrateInput{
		UnitID:        offlineUnitID,
		TargetVersion: accessory.SchemaVersion(targetVersion),
	})
	if err != nil {
		return err
	}

	exported, err := svc.ExportBlock(ctx, &savedata.ExportBlockInput{UnitID: offlineUnitID})
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[1], exported.Block, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", args[1])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "migrated %s -> %s: marker %d -> %d, %d bytes, repaired=%t\n",
		args[0], args[1], migrated.From, migrated.To, len(exported.Block), migrated.Repaired)
	return nil
}
