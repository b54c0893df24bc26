// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with a rendered error page, so
// handlers can fail a request in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the failure and renders a friendly error page.
// userMsg is shown to the user; logMsg and err go to the log only.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	renderError(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs a malformed request and renders a friendly error page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	renderError(w, r, http.StatusBadRequest, userMsg, backURL)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", backURL),
		Message: msg,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
