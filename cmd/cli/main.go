package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	database "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/config"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/seed"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
)

func usage() {
	fmt.Println("usage: cli <command> [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  seed            replace the menu with the built-in café menu")
	fmt.Println("  update-images   attach the built-in image URLs to existing menu items")
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	withImages := seedCmd.Bool("with-images", false, "attach image URLs while seeding")

	updateImagesCmd := flag.NewFlagSet("update-images", flag.ExitOnError)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var command func(ctx context.Context, catalog *services.CatalogService) error

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		command = func(ctx context.Context, catalog *services.CatalogService) error {
			var images map[string]string
			if *withImages {
				images = seed.MenuImages
			}
			report, err := seed.SeedMenu(ctx, catalog, seed.MenuItems, images)
			if err != nil {
				return err
			}
			fmt.Printf("Successfully seeded %d of %d menu items.\n", report.Inserted, len(seed.MenuItems))
			return nil
		}
	case "update-images":
		updateImagesCmd.Parse(os.Args[2:])
		command = func(ctx context.Context, catalog *services.CatalogService) error {
			report, err := seed.UpdateImages(ctx, catalog, seed.MenuImages)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %d menu items with images.\n", report.Updated)
			fmt.Printf("Total items with images: %d/%d\n", report.WithImages, report.Total)
			return nil
		}
	default:
		usage()
		os.Exit(1)
	}

	if err := run(command); err != nil {
		slog.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

// run opens the store, executes command and always releases the connection.
func run(command func(ctx context.Context, catalog *services.CatalogService) error) error {
	cfg, err := database.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			slog.Error("Failed to disconnect MongoDB", "error", err)
		}
	}()

	var menuStore store.MenuStore = store.NewMenuStore(db.OpenCollection(database.MenuItemsCollection))

	// Writes must also drop whatever the API servers have cached.
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable, cached menu entries will expire on their own", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
		menuStore = store.NewCachedMenuStore(menuStore, rdb, cfg.CacheTTL)
	}

	return command(ctx, services.NewCatalogService(menuStore, cfg.ListLimit))
}
