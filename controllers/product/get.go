package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/repository"
)

// GetProducts lists the catalog. An optional ?categories=1,2 query narrows
// the listing to those categories.
func GetProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter repository.ProductFilter
		if csv := c.Query("categories"); csv != "" {
			for _, token := range strings.Split(csv, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				id, err := strconv.ParseUint(token, 10, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categories filter"})
					return
				}
				filter.CategoryIDs = append(filter.CategoryIDs, uint(id))
			}
		}

		list, err := products.List(c, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetProductByID returns a single product with its category populated.
func GetProductByID(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := products.Get(c, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func GetProductCount(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := products.Count(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"productCount": n})
	}
}

// GetFeaturedProducts returns up to :count featured products. The count
// segment is optional and defaults to 0, which yields an empty list.
func GetFeaturedProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := 0
		if param := c.Param("count"); param != "" {
			parsed, err := strconv.Atoi(param)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
				return
			}
			count = parsed
		}
		list, err := products.Featured(c, count)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
