package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every served request through the given logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, c.Request().URL.Path, userID, requestID, c.Response().Status, latency, err)
			return nil
		}
	}
}
