package middleware

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Logger logs every handled update with its chat id and handling duration.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.Int64("chatID", c.Chat().ID),
				slog.Duration("duration", time.Since(start)),
			}
			// message text is never logged, the login dialogue carries passwords
			if c.Callback() != nil {
				attrs = append(attrs, slog.String("callback", c.Callback().Data))
			} else if c.Message() != nil {
				attrs = append(attrs, slog.Int("msgID", c.Message().ID))
			}
			if err != nil {
				attrs = append(attrs, slog.String("err", err.Error()))
				slog.Error("update handled with error", attrs...)
				return err
			}

			slog.Info("update handled", attrs...)
			return nil
		}
	}
}
