package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/server/services"
)

type createItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=50"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=200"`
	IsAvailable *bool   `json:"is_available"`
}

type updateItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=50"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty,max=200"`
	IsAvailable *bool    `json:"is_available"`
}

type listItemsQuery struct {
	Skip  int `form:"skip" binding:"omitempty,gte=0"`
	Limit int `form:"limit,default=10" binding:"gte=1,lte=100"`
}

type searchItemsQuery struct {
	Keyword  string   `form:"keyword"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
}

func (s *Server) listItems(c *gin.Context) {
	var q listItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.items.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponses(items))
}

func (s *Server) getItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := s.items.Get(c.Request.Context(), id)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := services.NewItem{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		fields.IsAvailable = *req.IsAvailable
	}

	item, err := s.items.Create(c.Request.Context(), fields, currentUser(c).ID)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) updateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := services.ItemPatch{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		IsAvailable: req.IsAvailable,
	}

	item, err := s.items.Update(c.Request.Context(), id, currentUser(c).ID, patch)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) deleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	name, err := s.items.Delete(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("item '%s' deleted", name)})
}

func (s *Server) searchItems(c *gin.Context) {
	var q searchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.items.Search(c.Request.Context(), services.ItemFilter{
		Keyword:  q.Keyword,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	})
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponses(items))
}

func (s *Server) listOwnItems(c *gin.Context) {
	items, err := s.items.ListOwned(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponses(items))
}

// itemID parses the :id path parameter. A non-numeric id cannot name any
// item, so it reports the same not-found as a missing one.
func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		errorDetail(c, http.StatusNotFound, "item not found")
		return 0, false
	}
	return id, true
}
