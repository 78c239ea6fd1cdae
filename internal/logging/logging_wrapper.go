package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a plain handler that reports errors into an
// http.HandlerFunc that logs each request with its own LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("requestID", newRequestID())
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware is the huma equivalent of LoggingWrapper. Handlers reach the
// request's LogData through GetLogData.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "unknown"
		if op := ctx.Operation(); op != nil {
			loggingName = op.OperationID
		}

		logData := NewLogData(log)
		logData.AddData("requestID", newRequestID())
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		handlerErr, failed := logData.popError()
		entry := logData.Log()
		if failed {
			entry.WithError(handlerErr).Errorf("Handler.%v.Error", loggingName)
			return
		}
		entry.Infof("Handler.%v.Complete", loggingName)
	}
}

// AddError records the error a handler is about to return so the middleware
// logs the request at error level.
func (l *LogData) AddError(err error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.dataItems[logrus.ErrorKey] = err
}

func (l *LogData) popError() (error, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	err, ok := l.dataItems[logrus.ErrorKey].(error)
	delete(l.dataItems, logrus.ErrorKey)
	return err, ok
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
