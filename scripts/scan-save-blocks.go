package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-savedata/internal/redis"
	saverepo "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata"
)

// Scans stored save blocks and reports the ones that decode badly or that lose
// their items on load because they carry a positive marker.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClientFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	sc, err := newScanner(client)
	if err != nil {
		log.Fatal("Failed to create scanner:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning save blocks...")

	result, err := sc.scan(ctx, os.Stdout)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d units, %d cleared on load, %d unreadable\n",
		result.checked, result.expanded, len(result.unreadable))

	if len(result.unreadable) == 0 {
		fmt.Println("No unreadable blocks found!")
		return
	}

	fmt.Println("\nUnreadable units:")
	for _, unitID := range result.unreadable {
		fmt.Printf("  - %s\n", unitID)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	sc.remove(ctx, os.Stdout, result.unreadable)
	fmt.Println("\nCleanup complete!")
}

type scanner struct {
	client redisclient.Client
	repo   saverepo.Repository
	reader *codec.Codec
}

type scanResult struct {
	checked    int
	expanded   int
	unreadable []string
}

func newScanner(client redisclient.Client) (*scanner, error) {
	repo, err := saverepo.NewRedis(&saverepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	reader, err := codec.New(nil)
	if err != nil {
		return nil, err
	}

	return &scanner{client: client, repo: repo, reader: reader}, nil
}

func (sc *scanner) scan(ctx context.Context, w io.Writer) (*scanResult, error) {
	prefix := saverepo.GetKey("")
	iter := sc.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	result := &scanResult{}
	for iter.Next(ctx) {
		unitID := strings.TrimPrefix(iter.Val(), prefix)
		result.checked++

		out, err := sc.repo.Get(ctx, saverepo.GetInput{UnitID: unitID})
		if err != nil {
			fmt.Fprintf(w, "✗ Unreadable record for %s: %v\n", unitID, err)
			result.unreadable = append(result.unreadable, unitID)
			continue
		}

		list, report, err := sc.reader.Decode(out.Save.Block, accessory.CurrentCapacity)
		if err != nil {
			fmt.Fprintf(w, "✗ Unreadable block for %s: %v\n", unitID, err)
			result.unreadable = append(result.unreadable, unitID)
			continue
		}

		if report.Repaired {
			result.expanded++
			fmt.Fprintf(w, "! %s has marker %d, its roster is cleared on every load\n", unitID, report.Version)
			continue
		}

		fmt.Fprintf(w, "✓ %s: %d of %d slots equipped\n", unitID, list.EquippedCount(), list.Count())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (sc *scanner) remove(ctx context.Context, w io.Writer, unitIDs []string) {
	for _, unitID := range unitIDs {
		if _, err := sc.repo.Delete(ctx, saverepo.DeleteInput{UnitID: unitID}); err != nil {
			fmt.Fprintf(w, "Failed to delete %s: %v\n", unitID, err)
		} else {
			fmt.Fprintf(w, "Deleted %s\n", unitID)
		}
	}
}
