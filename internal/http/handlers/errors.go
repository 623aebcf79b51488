package handlers

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps typed domain errors onto envelope failures.
// Internal errors never leak their cause to the caller.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondFail(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		RespondFail(c, http.StatusUnauthorized, err.Error())
	case domain.IsNotFound(err):
		RespondFail(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		RespondFail(c, http.StatusConflict, err.Error())
	default:
		utils.LogError(middleware.GetRequestID(c), "gateway", "internal", err)
		RespondFail(c, http.StatusInternalServerError, "internal server error")
	}
}
