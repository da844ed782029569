package notify

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/playback"
)

const (
	trackTimeout = 4000
	errorTimeout = 8000
)

// Watch turns transport events into notifications until ctx is done or the
// subscription closes. A track is announced once, when it starts playing;
// each announcement replaces the previous one.
func Watch(ctx context.Context, sub *playback.Subscription, n Notifier) {
	w := watcher{notifier: n, announced: -1}
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.StateChanged:
			w.onState(e.State)
		case e := <-sub.Error:
			w.send(errorNotification(e))
		case <-sub.TrackChanged:
		}
	}
}

type watcher struct {
	notifier  Notifier
	announced int // index of the last announced track
	lastID    uint32
}

func (w *watcher) onState(s playback.PlayerState) {
	if !s.Playing {
		return
	}
	if s.Index == w.announced {
		return
	}
	w.announced = s.Index
	n := trackNotification(s)
	n.ReplacesID = w.lastID
	if id := w.send(n); id != 0 {
		w.lastID = id
	}
}

func (w *watcher) send(n Notification) uint32 {
	id, err := w.notifier.Notify(n)
	if err != nil {
		zlog.Debug().Err(err).Str("title", n.Title).Msg("notification failed")
		return 0
	}
	return id
}

func trackNotification(s playback.PlayerState) Notification {
	body := s.Track.Link
	if s.TrackCount > 0 {
		body = fmt.Sprintf("Track %d of %d", s.Index+1, s.TrackCount)
	}
	return Notification{
		Title:   s.Track.Name,
		Body:    body,
		Icon:    "audio-x-generic",
		Timeout: trackTimeout,
		Urgency: UrgencyLow,
	}
}

func errorNotification(e playback.ErrorEvent) Notification {
	return Notification{
		Title:   "Playback error",
		Body:    errmsg.FormatWith(e.Operation, e.Link, errors.UnwrapAll(e.Err)),
		Icon:    "dialog-error",
		Timeout: errorTimeout,
		Urgency: UrgencyNormal,
	}
}
