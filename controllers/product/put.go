package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/upload"
)

// UpdateProduct replaces a product's fields from a multipart form. An absent
// image file keeps the stored image.
func UpdateProduct(products repository.ProductRepository, categories repository.CategoryRepository, saver *upload.Saver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		existing, err := products.Get(c, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
			return
		}

		product, err := productFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product.ID = id
		product.Image = existing.Image

		if _, err := categories.Get(c, product.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify category"})
			return
		}

		if file, err := c.FormFile("image"); err == nil {
			filename, err := saver.Save(c, file)
			if err != nil {
				if errors.Is(err, upload.ErrUnsupportedType) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "image must be png, jpg or jpeg"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
				return
			}
			product.Image = saver.PublicURL(c, filename)
		}

		if err := products.Update(c, product); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}

		updated, err := products.Get(c, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
