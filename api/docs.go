package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed swagger.json
var swaggerDoc []byte

const swaggerDocPath = "/docs/swagger.json"

// RegisterDocs serves the OpenAPI document and the swagger UI that renders it.
func RegisterDocs(router gin.IRouter) {
	router.GET(swaggerDocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", swaggerDoc)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerDocPath))))
}
