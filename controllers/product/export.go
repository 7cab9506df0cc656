package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/salvarez-dev/eshop-api/repository"
)

// ExportProducts streams the catalog as an xlsx attachment.
func ExportProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c, repository.ProductFilter{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{
			"ID", "Name", "Brand", "Price", "Category",
			"CountInStock", "Rating", "IsFeatured", "DateCreated",
		} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category.Name)
			row.AddCell().SetValue(p.CountInStock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.IsFeatured)
			row.AddCell().SetValue(p.DateCreated.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write workbook"})
			return
		}
	}
}
