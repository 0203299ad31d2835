// Command rematch re-runs the matching pass for one item. Useful after a
// provider outage left items unindexed or unsearched.
//
// Usage: rematch <item-uuid>
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/adapter/imagestore"
	"github.com/novahq/nova-backend/internal/adapter/postgres"
	itemrepo "github.com/novahq/nova-backend/internal/adapter/postgres/item"
	matchrepo "github.com/novahq/nova-backend/internal/adapter/postgres/match"
	notificationrepo "github.com/novahq/nova-backend/internal/adapter/postgres/notification"
	"github.com/novahq/nova-backend/internal/adapter/provider/matcher"
	"github.com/novahq/nova-backend/internal/app"
	"github.com/novahq/nova-backend/internal/config"
	"github.com/novahq/nova-backend/internal/service/matching"
	"github.com/novahq/nova-backend/internal/service/notification"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: rematch <item-uuid>")
	}

	itemID, err := uuid.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("invalid item id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	images, err := imagestore.New(cfg.Images.Dir)
	if err != nil {
		logger.Error("init image store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	items := itemrepo.New(pool)
	matches := matchrepo.New(pool)
	notifications := notificationrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	provider := matcher.NewClient(cfg.Matcher, images, logger)

	notificationSvc := notification.NewService(logger, notifications)
	matchingSvc := matching.NewService(logger, items, matches, provider, notificationSvc, tx)

	// Re-matching is owner-only; run the pass on the owner's behalf.
	item, err := items.GetByID(ctx, itemID)
	if err != nil {
		logger.Error("load item", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := matchingSvc.TriggerMatching(ctxutil.WithUserID(ctx, item.UserID), itemID)
	if err != nil {
		logger.Error("matching pass failed",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("matching pass completed",
		slog.String("item_id", itemID.String()),
		slog.Int("new_matches", len(created)),
	)
}
