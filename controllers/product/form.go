package productcontroller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/models"
)

// productFromForm reads the multipart fields shared by create and update.
// The image file is handled separately by the callers.
func productFromForm(c *gin.Context) (*models.Product, error) {
	name := c.PostForm("name")
	categoryStr := c.PostForm("category")
	countInStockStr := c.PostForm("countInStock")
	if name == "" || categoryStr == "" || countInStockStr == "" {
		return nil, errors.New("name, category and countInStock are required")
	}

	categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
	if err != nil {
		return nil, errors.New("invalid category")
	}

	countInStock, err := strconv.Atoi(countInStockStr)
	if err != nil || countInStock < 0 || countInStock > models.MaxCountInStock {
		return nil, errors.New("countInStock must be between 0 and 255")
	}

	product := &models.Product{
		Name:            name,
		Description:     c.PostForm("description"),
		RichDescription: c.PostForm("richDescription"),
		Brand:           c.PostForm("brand"),
		CategoryID:      uint(categoryID),
		CountInStock:    countInStock,
	}

	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return nil, errors.New("invalid price")
		}
		product.Price = price
	}
	if v := c.PostForm("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("invalid rating")
		}
		product.Rating = rating
	}
	if v := c.PostForm("numReviews"); v != "" {
		numReviews, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid numReviews")
		}
		product.NumReviews = numReviews
	}
	if v := c.PostForm("isFeatured"); v != "" {
		product.IsFeatured = strings.EqualFold(v, "true")
	}

	return product, nil
}

func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
