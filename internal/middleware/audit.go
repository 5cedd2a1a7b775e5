package middleware

import (
	"fmt"

	"filevault/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Audit creates middleware that appends an audit log entry for every
// inbound update before it reaches the handlers.
func Audit(audit *service.AuditService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			audit.Record(sender.ID, describe(c))

			logger.Debug("Update received",
				zap.Int64("user_id", sender.ID),
			)

			return next(c)
		}
	}
}

func describe(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return fmt.Sprintf("callback: %s", c.Callback().Unique)
	case c.Message() != nil && c.Message().Document != nil:
		return "sent a document"
	case c.Message() != nil && c.Message().Photo != nil:
		return "sent a photo"
	case c.Text() != "":
		return fmt.Sprintf("message: %s", c.Text())
	default:
		return "update"
	}
}
