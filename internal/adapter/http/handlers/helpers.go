package handlers

import (
	"net/http"

	"legal_intake/internal/adapter/http/middleware"
	"legal_intake/internal/domain/entities"
	"legal_intake/pkg"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// requirePrincipal fetches the principal set by the auth middleware; when it
// is absent the request is aborted with 401 and ok is false.
func requirePrincipal(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNotAuthenticated.HTTPStatus, errNotAuthenticated.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
