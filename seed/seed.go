// Package seed populates and patches the menu collection. A failing record
// is logged and skipped; the batch always runs to the end.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
)

// Catalog is the subset of the catalog service the seeders need.
type Catalog interface {
	Create(ctx context.Context, in models.MenuItemCreate) (*models.MenuItem, error)
	ListAll(ctx context.Context) (models.Listing[models.MenuItem], error)
	Clear(ctx context.Context) (int64, error)
	SetImageByName(ctx context.Context, name, imageURL string) (bool, error)
}

type MenuReport struct {
	Cleared  int64
	Inserted int
	Failed   int
}

type ImageReport struct {
	Updated    int
	Missed     int
	Failed     int
	WithImages int
	Total      int
}

// SeedMenu replaces the whole menu with items. When images is non-nil each
// item gets the image registered under its name.
func SeedMenu(ctx context.Context, catalog Catalog, items []models.MenuItemCreate, images map[string]string) (MenuReport, error) {
	var report MenuReport

	cleared, err := catalog.Clear(ctx)
	if err != nil {
		return report, fmt.Errorf("clear existing menu items: %w", err)
	}
	report.Cleared = cleared
	slog.Info("Cleared existing menu items", "count", cleared)

	for _, in := range items {
		name := nameOf(in)
		if url, ok := images[name]; ok {
			in.ImageURL = &url
		}

		item, err := catalog.Create(ctx, in)
		if err != nil {
			report.Failed++
			slog.Error("Failed to add menu item", "name", name, "error", err)
			continue
		}
		report.Inserted++
		slog.Info("Added menu item", "name", item.Name, "id", item.ID)
	}

	slog.Info("Seeded menu", "inserted", report.Inserted, "failed", report.Failed)
	return report, nil
}

// UpdateImages sets image_url on existing items matched by name and then
// counts how many stored items carry an image.
func UpdateImages(ctx context.Context, catalog Catalog, images map[string]string) (ImageReport, error) {
	var report ImageReport

	names := make([]string, 0, len(images))
	for name := range images {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		changed, err := catalog.SetImageByName(ctx, name, images[name])
		switch {
		case err != nil:
			report.Failed++
			slog.Error("Failed to update image", "name", name, "error", err)
		case changed:
			report.Updated++
			slog.Info("Updated image", "name", name)
		default:
			report.Missed++
			slog.Warn("Image not updated, item may not exist", "name", name)
		}
	}

	listing, err := catalog.ListAll(ctx)
	if err != nil {
		return report, fmt.Errorf("verify images: %w", err)
	}
	report.Total = len(listing.Items)
	for _, item := range listing.Items {
		if item.ImageURL != nil && *item.ImageURL != "" {
			report.WithImages++
		}
	}

	slog.Info("Updated menu images",
		"updated", report.Updated,
		"missed", report.Missed,
		"failed", report.Failed,
		"with_images", report.WithImages,
		"total", report.Total,
	)
	return report, nil
}

func nameOf(in models.MenuItemCreate) string {
	if in.Name == nil {
		return ""
	}
	return *in.Name
}
