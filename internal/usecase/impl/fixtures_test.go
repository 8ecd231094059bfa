package impl

import (
	"io"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Favorites: &config.FavoritesConfig{Key: "favorites"},
		Media:     &config.MediaConfig{MaxEdge: 800, Quality: 70, MaxEncodedLength: entity.MaxEncodedImageLength},
		Adoption:  &config.AdoptionConfig{MinMessageLength: 10},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func animalIDs(animals []*entity.Animal) []string {
	out := make([]string, 0, len(animals))
	for _, a := range animals {
		out = append(out, a.ID)
	}

	return out
}
