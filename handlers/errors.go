package handlers

import (
	"net/http"

	"roomly/services/apperr"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps the service error taxonomy onto HTTP statuses. A conflict
// response carries the blocking interval so the client can say which slot is
// taken rather than a generic failure.
func writeError(c *gin.Context, err error) {
	e, ok := apperr.As(err)
	if !ok {
		utils.GetLogger().Error("unclassified error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	switch e.Kind {
	case apperr.KindValidation:
		utils.JSONError(c, http.StatusBadRequest, e.Message, "")
	case apperr.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, e.Message, "")
	case apperr.KindConflict:
		body := gin.H{"message": e.Message}
		if e.Conflicting != nil {
			body["conflict"] = gin.H{
				"start": e.Conflicting.Start,
				"end":   e.Conflicting.End,
			}
		}
		c.JSON(http.StatusConflict, body)
	case apperr.KindBusiness:
		utils.JSONError(c, http.StatusUnprocessableEntity, e.Message, "")
	default:
		utils.GetLogger().Error("internal error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
