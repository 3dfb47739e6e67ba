package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "welcome to the storefront API"})
}

func (s *Server) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("hello %s", c.Param("name"))})
}
