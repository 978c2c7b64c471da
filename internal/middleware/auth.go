package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// OwnerOnly creates middleware that drops updates from anyone but the owner.
// This is a single-learner bot; there are no accounts to manage.
func OwnerOnly(ownerID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID != ownerID {
				if sender != nil {
					logger.Warn("Ignoring update from unknown user",
						zap.Int64("user_id", sender.ID),
					)
				}
				return c.Send("This is a personal vocabulary bot. It only talks to its owner.")
			}

			return next(c)
		}
	}
}
