package domain

// StatusUnplayed - статус эпизода, воспроизведение которого не начиналось.
// Для таких эпизодов оставшееся время не отслеживается.
const StatusUnplayed = "unplayed"

// Episode представляет отдельный эпизод внутри группы фида.
// MinutesRemaining равен nil для непрослушанных эпизодов: атрибут
// с оставшимся временем в этом случае не выводится.
type Episode struct {
	URL              string
	GUID             string
	Status           string
	MinutesRemaining *string
}

// Feed представляет подкаст, сгруппированный по заголовку, с URL подписки
// и эпизодами в порядке их появления во входных данных.
type Feed struct {
	Title    string
	URL      string
	Episodes []Episode
}

// Outline - итоговый документ: заголовок и фиды в порядке первого появления.
type Outline struct {
	Title string
	Feeds []Feed
}

// EpisodeCount возвращает общее число эпизодов во всех фидах.
func (o *Outline) EpisodeCount() int {
	n := 0
	for _, f := range o.Feeds {
		n += len(f.Episodes)
	}
	return n
}
