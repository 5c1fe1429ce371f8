package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"socialgraph-backend/pkg/common"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// respondError maps domain errors to HTTP status codes. Typed errors
// carry their own status; everything else is an internal error, and
// the details stay in the log rather than the response.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		common.RespondError(w, status, string(appErr.Type), appErr.Message)
		return
	}

	// Bus-level validation failures arrive as plain wrapped errors.
	if strings.Contains(err.Error(), "validation failed") {
		common.RespondError(w, http.StatusBadRequest, string(pkgerrors.ErrorTypeValidation), err.Error())
		return
	}

	logger.Error("request failed", zap.Error(err))
	common.RespondError(w, http.StatusInternalServerError, string(pkgerrors.ErrorTypeInternal), "internal server error")
}
