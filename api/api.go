package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caixinha/caixinha"
	"github.com/caixinha/caixinha/api/middleware"
	"github.com/caixinha/caixinha/config"
)

var errMissingClientID = errors.New("id is required in the route /clientes/:id")

// Api wires the HTTP surface to the ledger engine. Handlers translate
// requests into ledger calls and domain errors into status codes; they
// carry no ledger logic of their own.
type Api struct {
	ledger *caixinha.Caixinha
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/clientes/:id/transacoes", a.RecordTransaction)
	router.GET("/clientes/:id/extrato", a.GetStatement)
	return a.router
}

func NewAPI(ledger *caixinha.Caixinha) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	r.Use(middleware.RateLimitMiddleware(conf))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{ledger: ledger, router: r}
}

// clienteID extracts the numeric client id from the route. A non-numeric id
// can never match a provisioned account, so callers treat the error as not
// found rather than bad input.
func clienteID(c *gin.Context) (int64, error) {
	id, passed := c.Params.Get("id")
	if !passed {
		return 0, errMissingClientID
	}
	return strconv.ParseInt(id, 10, 64)
}
