// Command reconcile runs the offline batch corrections of the demo toolkit
// configuration document: duplicate removal, URL and thumbnail repair, model
// name normalization, channel filter derivation, asset discovery from file
// listings and rename-table application.
//
// Every subcommand loads the local config.json, applies one transform and
// writes the result back to both the file and the document store (unless
// suppressed with --no-store), bumping the document version.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brandforge/demokit-backend/internal/bootstrap"
	"github.com/brandforge/demokit-backend/internal/config"
	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/reconcile"
	mongorepo "github.com/brandforge/demokit-backend/internal/repositories/mongodb"
	"github.com/brandforge/demokit-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagDir     string
	flagURLBase string
	flagNoStore bool
	flagDryRun  bool
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("reconcile failed: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reconcile",
		Short:         "Offline corrections of the demo toolkit configuration document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagFile, "file", config.GetEnv("CONFIG_FILE", "config.json"), "path of the local configuration document")
	root.PersistentFlags().StringVar(&flagDir, "dir", "", "local directory to use as the file listing (default: object store)")
	root.PersistentFlags().StringVar(&flagURLBase, "url-base", "/assets", "URL base for files listed from a local directory")
	root.PersistentFlags().BoolVar(&flagNoStore, "no-store", config.GetEnvAsBool("RECONCILE_NO_STORE", false), "skip writing the result to the document store")
	root.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "report changes without writing anything")

	root.AddCommand(
		dedupeCmd(),
		urlsCmd(),
		thumbnailsCmd(),
		modelsCmd(),
		channelsCmd(),
		discoverCmd(),
		renameCmd(),
	)
	return root
}

func dedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove duplicate assets, keeping the first occurrence of each",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			dropped := reconcile.DedupeAssets(doc)
			for _, asset := range dropped {
				log.Printf("Dropped duplicate asset %s (%s)", asset.ID, asset.Title)
			}
			log.Printf("Removed %d duplicate assets, %d remain", len(dropped), len(doc.Assets))
			return writeBack("reconcile:dedupe", doc)
		},
	}
}

func urlsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "urls",
		Short: "Rewrite asset URLs to match the actual file listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			listing, err := loadListing(cmd.Context())
			if err != nil {
				return err
			}
			report := reconcile.ReconcileURLs(doc, listing)
			for _, id := range report.Orphans {
				log.Printf("Orphaned asset %s: no matching file in listing", id)
			}
			log.Printf("Rewrote %d asset URLs, %d orphans", report.Updated, len(report.Orphans))
			return writeBack("reconcile:urls", doc)
		},
	}
}

func thumbnailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnails",
		Short: "Move video thumbnails into the same directory as their video",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			repaired := reconcile.RepairThumbnails(doc)
			log.Printf("Repaired %d video thumbnails", repaired)
			return writeBack("reconcile:thumbnails", doc)
		},
	}
}

func modelsCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Normalize alternate model name spellings to their canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			aliases := reconcile.ModelAliases
			if from != "" && to != "" {
				aliases = map[string]string{from: to}
			}
			changed := reconcile.NormalizeModelNames(doc, aliases)
			log.Printf("Normalized %d model name fields", changed)
			return writeBack("reconcile:models", doc)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "alternate spelling to replace")
	cmd.Flags().StringVar(&to, "to", "", "canonical spelling")
	return cmd
}

func channelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "Recompute the channel filter list from the message channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			reconcile.DeriveChannels(doc)
			log.Printf("Channel filter is now %v", doc.FilterOptions.Channels)
			return writeBack("reconcile:channels", doc)
		},
	}
}

func discoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Synthesize asset records for listed files missing from the document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			listing, err := loadListing(cmd.Context())
			if err != nil {
				return err
			}
			report := reconcile.DiscoverAssets(doc, listing)
			for _, reason := range report.Skipped {
				log.Printf("Warning: skipped file: %s", reason)
			}
			for _, asset := range report.Added {
				log.Printf("Discovered asset %s (%s)", asset.NewAssetName, asset.Title)
			}
			log.Printf("Added %d assets, skipped %d files", len(report.Added), len(report.Skipped))
			return writeBack("reconcile:discover", doc)
		},
	}
}

func renameCmd() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Apply a CSV rename table (originalFileName,newAssetName) to the assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := bootstrap.Load(flagFile)
			if err != nil {
				return err
			}
			renames, err := loadRenameTable(csvPath)
			if err != nil {
				return err
			}
			renamed := reconcile.ApplyRenames(doc, renames)
			log.Printf("Renamed %d assets from %d table rows", renamed, len(renames))
			return writeBack("reconcile:rename", doc)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "path of the rename table CSV")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

// loadRenameTable parses a two-column CSV of originalFileName,newAssetName.
// Rows with too few fields are skipped with a warning, like every other bulk
// input here.
func loadRenameTable(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rename table: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rename table: %w", err)
	}

	renames := make(map[string]string)
	for i, record := range records {
		// Skip header
		if i == 0 {
			continue
		}
		if len(record) < 2 || record[0] == "" || record[1] == "" {
			log.Printf("Warning: rename table row %d is incomplete, skipping", i)
			continue
		}
		renames[record[0]] = record[1]
	}
	return renames, nil
}

// loadListing builds the external file listing, either from a local
// directory or from the object store.
func loadListing(ctx context.Context) ([]models.StoredObject, error) {
	if flagDir != "" {
		return listDir(flagDir, flagURLBase)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(ctx)

	bucket, err := client.Bucket(cfg.MongoDB.Database, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	return mongorepo.NewObjectRepository(bucket, cfg.Storage.PublicBaseURL).List(ctx, cfg.Storage.Prefix+"/")
}

// listDir turns a local directory into a file listing
func listDir(dir, urlBase string) ([]models.StoredObject, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var listing []models.StoredObject
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("Warning: failed to stat %q, skipping: %v", entry.Name(), err)
			continue
		}
		listing = append(listing, models.StoredObject{
			Path:       entry.Name(),
			URL:        urlBase + "/" + entry.Name(),
			SizeBytes:  info.Size(),
			UploadedAt: info.ModTime(),
		})
	}
	return listing, nil
}

// writeBack persists the rewritten document to the local file and the
// document store. The store write is on by default; --no-store suppresses it.
func writeBack(tag string, doc *models.ConfigDocument) error {
	if flagDryRun {
		log.Println("Dry run, nothing written")
		return nil
	}

	timeout := time.Duration(config.GetEnvAsInt("RECONCILE_TIMEOUT_SECONDS", 30)) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if flagNoStore {
		return persistDocument(ctx, tag, doc, flagFile, nil)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(ctx)

	repo := mongorepo.NewDocumentRepository(client.Database(cfg.MongoDB.Database))
	return persistDocument(ctx, tag, doc, flagFile, repo)
}
