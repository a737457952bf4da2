package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management/internal/domains/book/model"
	"book-management/internal/domains/book/service"
	"book-management/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAllBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ════════════════════════════════════════════════════════════════
// LIST BY AUTHOR: GET /api/books/author/:authorId
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByAuthor(c *gin.Context) {
	books, err := h.service.GetBooksByAuthor(c.Request.Context(), c.Param("authorId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Register(c *gin.Context) {
	var req model.BookRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.RegisterBook(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	var req model.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// RegisterRoutes mounts the book endpoints on rg.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.GetAll)
		books.POST("", h.Register)
		books.PUT("/:id", h.Update)
		books.GET("/author/:authorId", h.GetByAuthor)
	}
}
