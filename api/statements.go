package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caixinha/caixinha/internal/apierror"
)

// GetStatement handles GET /clientes/:id/extrato.
//
// Responses:
// - 200 OK: the current balance block plus up to 10 recent transactions, newest first.
// - 404 Not Found: the client id is unknown.
func (a Api) GetStatement(c *gin.Context) {
	accountID, err := clienteID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cliente not found"})
		return
	}

	resp, err := a.ledger.GetStatement(accountID)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}
