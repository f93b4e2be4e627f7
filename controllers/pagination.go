package controllers

import (
	"fmt"
	"net/url"
	"strconv"

	"doener-shop/models"

	"github.com/gin-gonic/gin"
)

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	queryParams := c.Request.URL.Query()
	makeURL := func(pageNum int) string {
		params := url.Values{}
		for key, values := range queryParams {
			if key == "page" {
				continue
			}
			for _, value := range values {
				params.Add(key, value)
			}
		}
		params.Set("page", strconv.Itoa(pageNum))
		params.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, c.Request.Host, c.Request.URL.Path, params.Encode())
	}

	links := models.PaginationLinks{Self: makeURL(page)}
	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}
	return links
}

func buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
		Links: generateLinks(c, page, limit, totalPages),
	}
}

// paginate returns the window of n items for the page.
func paginate(n, limit, offset int) (start, end int) {
	if offset >= n {
		return n, n
	}
	end = offset + limit
	if end > n {
		end = n
	}
	return offset, end
}
