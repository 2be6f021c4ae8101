package tide

import (
	"context"
	"time"

	"github.com/wavewatch/backend-go/internal/models"
)

type TideService interface {
	GetTideSeries(ctx context.Context, beachName, dateStr string) (*models.TideSeries, error)
	GetTideSeriesForDate(ctx context.Context, beachName string, date time.Time) (*models.TideSeries, error)
}

type StationResolver interface {
	Resolve(ctx context.Context, stationID string) (*models.StationMetadata, error)
}

type CacheProvider interface {
	GetSeries(ctx context.Context, stationID string, date time.Time) (*models.TideSeriesRecord, error)
	SaveSeries(ctx context.Context, record models.TideSeriesRecord) error
}
