// Package handler holds the request helpers shared by the resource handlers
// in its subpackages.
package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/httputil"
	"github.com/healthone/clinic-api/pkg/validator"
)

// BindJSON decodes the request body into req. On failure the error envelope
// has already been written and false is returned.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.RespondWithError(c, validator.BindingError(err))
		return false
	}
	return true
}

// ParamID parses the named path parameter as a UUID.
func ParamID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation(fmt.Sprintf("Invalid %s", name), err))
		return uuid.Nil, false
	}
	return id, true
}
