package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/common"
	"storefront/internal/server/models"
)

type registerRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	FullName *string `json:"full_name"`
	Password string  `json:"password" binding:"required,min=6"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.FullName, req.Password)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}

	// A fresh account owns nothing yet.
	c.JSON(http.StatusOK, toUserResponse(user, []*models.Item{}))
}

// login implements the password-for-token exchange. Credentials arrive as
// form fields, the OAuth2 password-grant shape.
func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		errorDetail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := s.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			errorDetail(c, http.StatusUnauthorized, "incorrect username or password")
			return
		}
		s.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) whoami(c *gin.Context) {
	user := currentUser(c)

	items, err := s.items.ListOwned(c.Request.Context(), user.ID)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user, items))
}
