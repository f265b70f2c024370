package repository

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

//go:embed seed/trains.csv
var defaultTrainsCSV []byte

type trainRecord struct {
	TrainID       string `csv:"train_id"`
	From          string `csv:"from"`
	To            string `csv:"to"`
	DepartureTime string `csv:"departure_time"`
	ArrivalTime   string `csv:"arrival_time"`
	Days          string `csv:"days_of_operation"`
}

// TrainCatalog is the read-only schedule. It is built once at startup and
// never mutated, so it is safe for concurrent use without locking.
type TrainCatalog struct {
	trains []domain.TrainRoute
}

func NewTrainCatalog(trains []domain.TrainRoute) *TrainCatalog {
	return &TrainCatalog{trains: append([]domain.TrainRoute(nil), trains...)}
}

// LoadTrainCatalog builds the catalog from a CSV seed file, or from the
// embedded default schedule when path is empty.
func LoadTrainCatalog(path string) (*TrainCatalog, error) {
	data := defaultTrainsCSV
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read train seed: %w", err)
		}
	}

	trains, err := ParseTrainRoutes(data)
	if err != nil {
		return nil, err
	}
	return NewTrainCatalog(trains), nil
}

func ParseTrainRoutes(data []byte) ([]domain.TrainRoute, error) {
	var records []trainRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse train seed: %w", err)
	}

	return lo.Map(records, func(r trainRecord, _ int) domain.TrainRoute {
		return domain.TrainRoute{
			TrainID:       r.TrainID,
			Origin:        r.From,
			Destination:   r.To,
			DepartureTime: r.DepartureTime,
			ArrivalTime:   r.ArrivalTime,
			OperatingDays: r.Days,
		}
	}), nil
}

func (c *TrainCatalog) List() []domain.TrainRoute {
	return append([]domain.TrainRoute(nil), c.trains...)
}

// RouteExists is direction-sensitive: (A, B) and (B, A) are separate routes.
func (c *TrainCatalog) RouteExists(origin, destination string) bool {
	return lo.ContainsBy(c.trains, func(t domain.TrainRoute) bool {
		return t.Serves(origin, destination)
	})
}

// FindMatches returns the routes from origin to destination that operate on the
// weekday of travelDate. A date that does not parse yields no matches.
func (c *TrainCatalog) FindMatches(origin, destination, travelDate string) []domain.TrainRoute {
	date, err := domain.ParseTravelDate(travelDate)
	if err != nil {
		return []domain.TrainRoute{}
	}

	day := date.Weekday()
	return lo.Filter(c.trains, func(t domain.TrainRoute, _ int) bool {
		return t.Serves(origin, destination) && t.OperatesOn(day)
	})
}

func (c *TrainCatalog) IsAvailableOn(origin, destination, travelDate string) bool {
	return len(c.FindMatches(origin, destination, travelDate)) > 0
}
