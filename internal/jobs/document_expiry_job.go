package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetlog/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DocumentExpiryJob periodically sweeps the fleet for vehicle documents
// (circulation permit, technical review, insurance, gases review) that fall
// due within the configured window and logs each one. It never mutates state.
type DocumentExpiryJob struct {
	handler    queries.GetExpiringDocumentsQueryHandler
	windowDays int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDocumentExpiryJob creates the sweep job. windowDays controls how far
// ahead of the expiry date a document starts being reported.
func NewDocumentExpiryJob(
	handler queries.GetExpiringDocumentsQueryHandler,
	windowDays int,
	logger *slog.Logger,
) *DocumentExpiryJob {
	return &DocumentExpiryJob{
		handler:    handler,
		windowDays: windowDays,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "document_expiry_job"),
	}
}

// Start schedules the sweep to run hourly.
func (j *DocumentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document expiry job started (running hourly)",
		"window_days", j.windowDays)
	return nil
}

// Stop stops the document expiry job.
func (j *DocumentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document expiry job stopped")
}

func (j *DocumentExpiryJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetExpiringDocumentsQuery(time.Now().AddDate(0, 0, j.windowDays))
	if err != nil {
		j.logger.ErrorContext(ctx, "Document expiry sweep failed to build query", "error", err)
		return
	}

	documents, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Document expiry sweep failed", "error", err)
		return
	}

	for _, doc := range documents {
		j.logger.WarnContext(ctx, "Vehicle document expiring",
			"vehicle_id", doc.VehicleID.String(),
			"plate", doc.Plate,
			"document", doc.Document,
			"expires_at", doc.ExpiresAt.Format(time.RFC3339),
		)
	}
}
