package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/upload"
)

// CreateProduct creates a product from a multipart form with an image file.
// The referenced category must exist.
func CreateProduct(products repository.ProductRepository, categories repository.CategoryRepository, saver *upload.Saver) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := productFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := categories.Get(c, product.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify category"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}
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

		if err := products.Create(c, product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		created, err := products.Get(c, product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
