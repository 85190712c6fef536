package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Root(c *gin.Context) {
	c.String(http.StatusOK, "Backend is up and running!")
}

func (a *API) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
