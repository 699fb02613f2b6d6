package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books?offset&limit. An offset past the end of the
// collection returns an empty array, not an error.
func (h *BookHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	books, err := h.service.List(c.Request.Context(), offset, limit)
	if err != nil {
		logger.Error("list books", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	dtos := make([]book.BookDTO, len(books))
	for i := range books {
		dtos[i] = books[i].ToDTO()
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", dtos)
}

// Create handles POST /books. Title is the only required field; the new
// record is echoed back.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req.Title)
	if err != nil {
		logger.Error("create book", err)
		response.Unprocessable(c, "Could not create book")
		return
	}

	response.Success(c, http.StatusOK, "Book created successfully", b.ToDTO())
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = 20

	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	return offset, limit
}
