package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/common"
	"storefront/internal/server/models"
)

// itemResponse is the wire form of an item. The owner is intentionally not
// exposed.
type itemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	IsAvailable bool    `json:"is_available"`
}

// userResponse is the wire form of a user. The credential hash is never
// serialized.
type userResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	FullName *string        `json:"full_name"`
	IsActive bool           `json:"is_active"`
	Items    []itemResponse `json:"items"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toItemResponse(item *models.Item) itemResponse {
	resp := itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		IsAvailable: item.IsAvailable,
	}
	if item.Description.Valid {
		d := item.Description.String
		resp.Description = &d
	}
	return resp
}

func toItemResponses(items []*models.Item) []itemResponse {
	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	return resp
}

func toUserResponse(user *models.User, items []*models.Item) userResponse {
	resp := userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
		Items:    toItemResponses(items),
	}
	if user.FullName.Valid {
		n := user.FullName.String
		resp.FullName = &n
	}
	return resp
}

func errorDetail(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// handleServiceError translates sentinel errors from the service layer into
// the contractual status codes. Anything unrecognized is a 500 with a
// generic body.
func (s *Server) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		errorDetail(c, http.StatusNotFound, "item not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		errorDetail(c, http.StatusBadRequest, "username already registered")
	case errors.Is(err, common.ErrorUnauthorized):
		s.abortUnauthenticated(c)
	default:
		s.logger.Error(c.Request.Context(), "internal error",
			"request_id", c.GetString(requestIDKey), "error", err.Error())
		errorDetail(c, http.StatusInternalServerError, "internal server error")
	}
}
