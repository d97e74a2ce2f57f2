package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a save block file and print its slots",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	out, err := svc.Inspect(cmd.Context(), &savedata.InspectInput{Block: block})
	if err != nil {
		return err
	}

	return printRoster(cmd.OutOrStdout(), len(block), out.Report, out.Slots)
}

func printRoster(w io.Writer, size int, report *codec.Report, list *accessory.SlotList) error {
	fmt.Fprintf(w, "marker:     %d (%s)\n", report.Version, report.Format)
	fmt.Fprintf(w, "bytes:      %d\n", size)
	fmt.Fprintf(w, "slots read: %d\n", report.SlotsRead)
	fmt.Fprintf(w, "repaired:   %t\n\n", report.Repaired)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tITEM")
	for i, id := range list.ItemIDs() {
		item := fmt.Sprint(id)
		if id == accessory.EmptyItemID {
			item = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, item)
	}
	return tw.Flush()
}
