package response

import (
	"encoding/json"
	"net/http"

	"refuge/internal/live"

	"github.com/labstack/echo/v4"
)

// Stream relays every snapshot of feed as a server-sent event until the
// client goes away or the feed ends. A feed that ends with an error sends a
// final "error" event. The feed is closed on return.
func Stream[T any](c echo.Context, feed *live.Feed[T]) error {
	defer feed.Close()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	enc := json.NewEncoder(w)
	done := c.Request().Context().Done()
	for {
		select {
		case snapshot, ok := <-feed.Updates():
			if !ok {
				return writeEnd(w, feed.Err())
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return nil
			}
			if err := enc.Encode(snapshot); err != nil {
				return nil
			}
			if _, err := w.Write([]byte("\n")); err != nil {
				return nil
			}
			w.Flush()
		case <-done:
			return nil
		}
	}
}

func writeEnd(w *echo.Response, err error) error {
	if err == nil {
		_, _ = w.Write([]byte("event: done\ndata: {}\n\n"))
		w.Flush()

		return nil
	}

	payload, _ := json.Marshal(ErrorInfo{Code: "FEED_FAILED", Details: err.Error()})
	_, _ = w.Write([]byte("event: error\ndata: "))
	_, _ = w.Write(payload)
	_, _ = w.Write([]byte("\n\n"))
	w.Flush()

	return nil
}
