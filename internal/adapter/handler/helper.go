package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/errors"
	"github.com/johnquangdev/meeting-copilot/internal/adapter/dto/common"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
	"github.com/johnquangdev/meeting-copilot/pkg/ai"
)

// getRequestID reads X-Request-ID from the request, or the one generated by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a success body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError maps err to an AppError and writes the failure envelope.
// Details of server-side failures are logged, never returned.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Success:   false,
		Error:     appErr.Message,
		Code:      appErr.Code.String(),
		Timestamp: time.Now().UTC(),
	}
	if appErr.HTTPCode < http.StatusInternalServerError {
		body.Details = appErr.Details
	}

	return c.JSON(appErr.HTTPCode, body)
}

// HTTPErrorHandler renders errors raised outside handlers (routing, body limit, auth, panics) in the failure envelope
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}

// toAppError classifies err into the application error taxonomy
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return errors.ErrInternal(err)
		}
		return errors.ErrHTTP(httpErr.Code, httpMessage(httpErr))
	}

	var validationErr *ucErrors.ValidationError
	if stdErrors.As(err, &validationErr) {
		return errors.ErrInvalidArgument(validationErr.Error()).WithDetail("field", validationErr.Field)
	}

	switch {
	case stdErrors.Is(err, ucErrors.ErrInvalidRequest), stdErrors.Is(err, ucErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument("Invalid request")
	case stdErrors.Is(err, ucErrors.ErrTokenExpired):
		return errors.ErrTokenExpired()
	case stdErrors.Is(err, ucErrors.ErrTokenInvalid), stdErrors.Is(err, ucErrors.ErrUserNotFound):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, ucErrors.ErrUserNotActive):
		return errors.ErrUserInactive()
	case stdErrors.Is(err, ucErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, ai.ErrModelUnavailable):
		return errors.ErrAIModelNotConfigured(err)
	case stdErrors.Is(err, ai.ErrModelTimeout):
		return errors.ErrAIModelTimeout(err)
	case stdErrors.Is(err, ai.ErrModelBusy):
		return errors.ErrAIQuotaExceeded(err)
	case stdErrors.Is(err, ai.ErrModelError):
		return errors.ErrAIAnalysisFailed(err)
	case stdErrors.Is(err, ucErrors.ErrAggregationFailed):
		return errors.ErrDBQueryFailed("list recent meetings", err)
	default:
		return errors.ErrInternal(err)
	}
}

func httpMessage(e *echo.HTTPError) string {
	if msg, ok := e.Message.(string); ok && msg != "" {
		return msg
	}
	if e.Message != nil {
		return fmt.Sprint(e.Message)
	}
	return http.StatusText(e.Code)
}
