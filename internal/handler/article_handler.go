package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/internal/dto"
	"github.com/reseldor/content-api/internal/middleware"
	"github.com/reseldor/content-api/internal/service"
	"github.com/reseldor/content-api/pkg/response"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title and content are required")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	authorID := c.GetString(middleware.ContextUserID)
	article, err := h.articleService.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, article)
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	var query dto.ListArticlesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if ok, msg := query.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.articleService.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Paginated(c, result.Data, response.PaginationMeta{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetByID handles GET /articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	article, err := h.articleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			response.NotFound(c, "Article not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, article)
}

// Update handles PATCH /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	requesterID := c.GetString(middleware.ContextUserID)
	article, err := h.articleService.Update(c.Request.Context(), c.Param("id"), requesterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			response.NotFound(c, "Article not found")
		case errors.Is(err, domain.ErrForbidden):
			response.Forbidden(c, "Only the author or an admin can modify this article")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, article)
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	requesterID := c.GetString(middleware.ContextUserID)

	if err := h.articleService.Delete(c.Request.Context(), c.Param("id"), requesterID); err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			response.NotFound(c, "Article not found")
		case errors.Is(err, domain.ErrForbidden):
			response.Forbidden(c, "Only the author or an admin can delete this article")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.NoContent(c)
}
