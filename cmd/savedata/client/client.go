// Package client provides commands that call a running accessory roster service
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-savedata/internal/handlers/savedata/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	unitID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running save data server",
	Long:  `Client commands make real gRPC requests against the accessory roster service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&unitID, "unit-id", "", "Unit ID (required)")
	_ = ClientCmd.MarkPersistentFlagRequired("unit-id") // nolint:errcheck // safe to ignore in init

	ClientCmd.AddCommand(getSlotsCmd)
	ClientCmd.AddCommand(equipSlotCmd)
	ClientCmd.AddCommand(unequipSlotCmd)
	ClientCmd.AddCommand(importSaveCmd)
	ClientCmd.AddCommand(exportSaveCmd)
	ClientCmd.AddCommand(migrateSaveCmd)
}

// dial lets tests swap in an in-process connection
var dial = func() (grpc.ClientConnInterface, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}, nil
}

// withClient runs call with a connected client and a request deadline
func withClient(cmd *cobra.Command, call func(ctx context.Context, client *v1alpha1.AccessoryServiceClient) error) error {
	conn, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	return call(ctx, v1alpha1.NewAccessoryServiceClient(conn))
}

func request(fields map[string]interface{}) (*structpb.Struct, error) {
	fields[v1alpha1.FieldUnitID] = unitID
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return req, nil
}

// printSlots writes the roster part of a response
func printSlots(w io.Writer, resp *structpb.Struct) {
	fields := resp.GetFields()
	fmt.Fprintf(w, "Unit ID: %s\n", fields[v1alpha1.FieldUnitID].GetStringValue())
	fmt.Fprintf(w, "Capacity: %d\n", int(fields[v1alpha1.FieldCapacity].GetNumberValue()))
	if format, ok := fields[v1alpha1.FieldFormat]; ok {
		fmt.Fprintf(w, "Format: %s (marker %d)\n",
			format.GetStringValue(), int32(fields[v1alpha1.FieldVersion].GetNumberValue()))
	}
	if repaired, ok := fields[v1alpha1.FieldRepaired]; ok && repaired.GetBoolValue() {
		fmt.Fprintf(w, "Repaired: roster was cleared on load\n")
	}

	fmt.Fprintf(w, "\nSlots:\n")
	for i, v := range fields[v1alpha1.FieldSlots].GetListValue().GetValues() {
		id := int32(v.GetNumberValue())
		if id == 0 {
			fmt.Fprintf(w, "  [%d] -\n", i)
			continue
		}
		fmt.Fprintf(w, "  [%d] %d\n", i, id)
	}
}
