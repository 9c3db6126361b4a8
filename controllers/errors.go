package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var statusByKind = map[services.ErrorKind]int{
	services.KindInvalidRequest: http.StatusBadRequest,
	services.KindConflict:       http.StatusBadRequest,
	services.KindNotFound:       http.StatusNotFound,
	services.KindStorage:        http.StatusInternalServerError,
}

// respondError maps a service error onto the HTTP response. Storage details
// are logged, never sent to the client.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	appErr := services.GetAppError(err)
	if appErr == nil {
		appErr = services.NewAppError(services.KindStorage, services.MsgStorage, err)
	}

	status, ok := statusByKind[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	entry := log.WithFields(logrus.Fields{
		"kind":       appErr.Kind,
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"request_id": c.GetString("request_id"),
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(appErr.Message)
	} else {
		entry.Debug(appErr.Message)
	}

	utils.JSONError(c, status, appErr.Message)
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, message string, err error) {
	utils.JSONErrorDetail(c, http.StatusBadRequest, message, utils.ValidationMessage(err))
}

// pathID parses the :id segment; only positive integers are accepted.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
