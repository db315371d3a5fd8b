// Seed populates a development database with demo data for one user:
// a couple of stories with chapters, plus characters, locations, and
// objects. Run it after the server has applied migrations, or with
// AUTO_MIGRATE handled here via the same embedded migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"storyloom/internal/catalog"
	"storyloom/internal/config"
	"storyloom/internal/domain/services"
	"storyloom/internal/repository/postgres"
	"storyloom/internal/service"
)

func main() {
	userID := flag.String("user", "demo-user", "Owning-user id to seed data for")
	clearData := flag.Bool("clear", false, "Delete the user's existing records before seeding")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: never seed or clear against production
	if cfg.Environment == "prod" {
		log.Fatalf("🚫 BLOCKED: seeding is not allowed in production")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("🌱 Seeding database (environment: %s, user: %s)", cfg.Environment, *userID)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if *clearData {
		log.Println("🧹 Clearing existing records...")
		if err := clearUserData(ctx, pool, tables, *userID); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	storyRepo := postgres.NewStoryRepository(repoConfig)
	chapterRepo := postgres.NewChapterRepository(repoConfig)
	characterRepo := postgres.NewCharacterRepository(repoConfig)
	locationRepo := postgres.NewLocationRepository(repoConfig)
	objectRepo := postgres.NewObjectRepository(repoConfig)

	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	storySvc := service.NewStoryService(storyRepo, logger)
	chapterSvc := service.NewChapterService(chapterRepo, storyRepo, logger)
	characterSvc := service.NewCharacterService(characterRepo, logger)
	locationSvc := service.NewLocationService(locationRepo, logger)
	objectSvc := service.NewObjectService(objectRepo, registry, logger)

	if err := seed(ctx, *userID, storySvc, chapterSvc, characterSvc, locationSvc, objectSvc); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("✅ Seed complete")
}

func seed(
	ctx context.Context,
	userID string,
	stories services.StoryService,
	chapters services.ChapterService,
	characters services.CharacterService,
	locations services.LocationService,
	objects services.ObjectService,
) error {
	target := 50000
	novel, err := stories.CreateStory(ctx, &services.CreateStoryRequest{
		UserID:      userID,
		Title:       "The Lantern Road",
		Description: ptr("A caravan novel set along a dying trade route."),
		Genre:       ptr("fantasy"),
		TargetWords: &target,
	})
	if err != nil {
		return err
	}

	short, err := stories.CreateStory(ctx, &services.CreateStoryRequest{
		UserID: userID,
		Title:  "Harbor Notes",
		Genre:  ptr("literary"),
	})
	if err != nil {
		return err
	}

	chapterSeeds := []struct {
		story   string
		title   string
		content string
	}{
		{novel.ID, "The Last Caravan", "The caravan left Breakwater at dawn, twelve wagons and a rumor of rain."},
		{novel.ID, "Salt and Ash", "Nobody spoke of the burned waystation until the third night."},
		{short.ID, "Morning Tide", "Gulls first, then the bells, then the shouting of the fishmongers."},
	}
	for _, cs := range chapterSeeds {
		storyID := cs.story
		if _, err := chapters.CreateChapter(ctx, &services.CreateChapterRequest{
			UserID:  userID,
			StoryID: &storyID,
			Title:   cs.title,
			Content: cs.content,
		}); err != nil {
			return err
		}
	}

	// One unattached chapter, the scratchpad case
	if _, err := chapters.CreateChapter(ctx, &services.CreateChapterRequest{
		UserID:  userID,
		Title:   "Loose scene: the ferry argument",
		Content: "Keep or cut. Two travelers argue over a fare neither can pay.",
	}); err != nil {
		return err
	}

	if _, err := characters.CreateCharacter(ctx, &services.CreateCharacterRequest{
		UserID:      userID,
		Name:        "Maren Tolvey",
		Description: ptr("Caravan master, owes everyone money"),
		Age:         intPtr(41),
		Goals:       ptr("Reach the capital before the pass closes"),
	}); err != nil {
		return err
	}

	harbor, err := locations.CreateLocation(ctx, &services.CreateLocationRequest{
		UserID:      userID,
		Name:        "Breakwater Harbor",
		Type:        ptr("port town"),
		Atmosphere:  ptr("salt, rust, low fog"),
		Description: ptr("The caravan's starting point"),
	})
	if err != nil {
		return err
	}

	if _, err := objects.CreateObject(ctx, &services.CreateObjectRequest{
		UserID:     userID,
		Name:       "The brass lantern",
		Importance: ptr("critical"),
		LocationID: &harbor.ID,
	}); err != nil {
		return err
	}

	return nil
}

// clearUserData removes every record owned by the user, children first
// so the foreign keys never block.
func clearUserData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, userID string) error {
	for _, table := range []string{
		tables.Objects,
		tables.Chapters,
		tables.Characters,
		tables.Locations,
		tables.Stories,
	} {
		query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", table)
		if _, err := pool.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func ptr(s string) *string { return &s }
func intPtr(i int) *int    { return &i }
