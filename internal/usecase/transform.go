package usecase

import (
	"context"
	"log/slog"
	"podopml/internal/domain"
)

// DefaultOutlineTitle - заголовок документа по умолчанию.
const DefaultOutlineTitle = "Podcast Subscriptions"

// Transformer группирует записи об эпизодах по заголовку фида
// и строит из них документ Outline.
type Transformer struct {
	log   *slog.Logger
	title string
}

// NewTransformer создает Transformer. Пустой title заменяется DefaultOutlineTitle.
func NewTransformer(log *slog.Logger, title string) *Transformer {
	if title == "" {
		title = DefaultOutlineTitle
	}
	return &Transformer{
		log:   log,
		title: title,
	}
}

// Transform выполняет группировку за один проход.
// Фиды и эпизоды внутри фида идут в порядке первого появления.
// URL фида берется из первой записи с данным заголовком, последующие игнорируются.
// Отсутствие feedTitle или feedUrl прерывает обработку с MissingFieldError.
func (t *Transformer) Transform(ctx context.Context, records []domain.Record) (*domain.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "usecase.Transformer.Transform"
	log := t.log.With(slog.String("op", op))

	index := make(map[string]int)
	feeds := make([]domain.Feed, 0)
	for _, rec := range records {
		title, err := rec.FeedTitle()
		if err != nil {
			return nil, err
		}
		url, err := rec.FeedURL()
		if err != nil {
			return nil, err
		}
		i, ok := index[title]
		if !ok {
			i = len(feeds)
			index[title] = i
			feeds = append(feeds, domain.Feed{Title: title, URL: url})
		} else if feeds[i].URL != url {
			log.Debug("Feed URL differs from first occurrence, keeping first",
				slog.String("feed", title),
				slog.String("url", url),
				slog.Int("position", rec.Position),
			)
		}
		episode, err := newEpisode(rec)
		if err != nil {
			return nil, err
		}
		feeds[i].Episodes = append(feeds[i].Episodes, episode)
	}

	log.Debug("Records grouped",
		slog.Int("records", len(records)),
		slog.Int("feeds", len(feeds)),
	)
	return &domain.Outline{Title: t.title, Feeds: feeds}, nil
}

// newEpisode переносит поля записи в эпизод.
// Для непрослушанных эпизодов оставшееся время не сохраняется.
func newEpisode(rec domain.Record) (domain.Episode, error) {
	var episode domain.Episode
	var err error
	if episode.URL, err = rec.EpisodeURL(); err != nil {
		return domain.Episode{}, err
	}
	if episode.GUID, err = rec.EpisodeGUID(); err != nil {
		return domain.Episode{}, err
	}
	if episode.Status, err = rec.EpisodeStatus(); err != nil {
		return domain.Episode{}, err
	}
	if episode.Status == domain.StatusUnplayed {
		return episode, nil
	}
	minLeft, err := rec.MinLeft()
	if err != nil {
		return domain.Episode{}, err
	}
	episode.MinutesRemaining = &minLeft
	return episode, nil
}
