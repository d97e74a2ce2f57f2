package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/internal/handlers/savedata/v1alpha1"
)

var (
	slotIndex int
	itemID    int32
)

var equipSlotCmd = &cobra.Command{
	Use:   "equip",
	Short: "Equip an item into a slot",
	RunE:  runEquipSlot,
}

var unequipSlotCmd = &cobra.Command{
	Use:   "unequip",
	Short: "Empty a slot",
	RunE:  runUnequipSlot,
}

func init() {
	equipSlotCmd.Flags().IntVar(&slotIndex, "index", 0, "Slot index")
	equipSlotCmd.Flags().Int32Var(&itemID, "item-id", 0, "Item ID (required)")
	_ = equipSlotCmd.MarkFlagRequired("item-id") // nolint:errcheck // safe to ignore in init

	unequipSlotCmd.Flags().IntVar(&slotIndex, "index", 0, "Slot index")
}

func runEquipSlot(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{
			v1alpha1.FieldIndex:  slotIndex,
			v1alpha1.FieldItemID: itemID,
		})
		if err != nil {
			return err
		}

		resp, err := client.EquipSlot(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to equip slot: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Equipped item %d in slot %d\n\n", itemID, slotIndex)
		printSlots(cmd.OutOrStdout(), resp)
		return nil
	})
}

func runUnequipSlot(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error {
		req, err := request(map[string]interface{}{
			v1alpha1.FieldIndex: slotIndex,
		})
		if err != nil {
			return err
		}

		resp, err := client.UnequipSlot(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to unequip slot: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Emptied slot %d\n\n", slotIndex)
		printSlots(cmd.OutOrStdout(), resp)
		return nil
	})
}
