package internal

import (
	"fmt"
	"os"

	"github.com/nso-orienteering/results/fixtures"
	"github.com/nso-orienteering/results/internal/config"
	"github.com/nso-orienteering/results/internal/standings"
)

func readFixture(path string, embedded []byte) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return data, nil
}

// LoadFixtures reads the event and season fixtures, preferring the files
// named in the config over the embedded ones.
func LoadFixtures(cfg config.FixturesConfig) (*standings.Event, *standings.Season, error) {
	eventData, err := readFixture(cfg.EventFile, fixtures.Event)
	if err != nil {
		return nil, nil, err
	}
	event, err := standings.ParseEvent(eventData)
	if err != nil {
		return nil, nil, err
	}

	seasonData, err := readFixture(cfg.SeasonFile, fixtures.Season)
	if err != nil {
		return nil, nil, err
	}
	season, err := standings.ParseSeason(seasonData)
	if err != nil {
		return nil, nil, err
	}
	return event, season, nil
}
