package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/internal/handlers/savedata/v1alpha1"
)

var getSlotsCmd = &cobra.Command{
	Use:   "get-slots",
	Short: "Show a unit's accessory roster",
	RunE:  runGetSlots,
}

func runGetSlots(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{})
		if err != nil {
			return err
		}

		resp, err := client.GetSlots(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to get slots: %w", err)
		}

		out := cmd.OutOrStdout()
		if !resp.GetFields()[v1alpha1.FieldFound].GetBoolValue() {
			fmt.Fprintf(out, "No save block stored, showing an empty roster\n\n")
		}
		printSlots(out, resp)
		return nil
	})
}
