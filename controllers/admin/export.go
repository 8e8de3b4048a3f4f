package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

// GET /api/admin/jogos/export-excel
func ExportGamesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Game
		if err := db.Order("name ASC").Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar jogos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Jogos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao criar planilha"})
			return
		}

		headers := []string{
			"ID", "Nome", "Descricao", "Preco", "Genero",
			"Plataforma", "Classificacao", "Estoque", "CriadoEm",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, g := range games {
			row := sheet.AddRow()
			row.AddCell().SetValue(g.ID)
			row.AddCell().SetValue(g.Name)
			row.AddCell().SetValue(g.Description)
			row.AddCell().SetValue(g.Price)
			row.AddCell().SetValue(g.Genre)
			row.AddCell().SetValue(g.Platform)
			row.AddCell().SetValue(g.AgeRating)
			row.AddCell().SetValue(g.Stock)
			row.AddCell().SetValue(g.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=jogos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao escrever planilha"})
			return
		}
	}
}
