package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/utils"
)

// RequestMiddleware assigns a request id, starts a New Relic transaction when
// nrApp is set and turns handler panics into 500 responses.
func RequestMiddleware(nrApp *newrelic.Application, zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				req.Header.Set(echo.HeaderXRequestID, requestID)
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			var txn *newrelic.Transaction
			if nrApp != nil {
				txn = nrApp.StartTransaction(req.Method + " " + c.Path())
				defer txn.End()
				txn.SetWebRequestHTTP(req)
				c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))
				c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			}

			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if txn != nil {
					txn.NoticeError(newrelic.Error{
						Message: fmt.Sprintf("panic: %v", r),
						Class:   "PanicError",
					})
				}
				zapLogger.Error("Panic recovered during request processing",
					logger.Any("panic_value", r),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", req.Method),
					logger.String("path", req.URL.Path),
					logger.String("request_id", requestID),
				)
				if !c.Response().Committed {
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
