package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryssellou/recruitment-dashboard/internal/sheets"
)

// GoogleStatus godoc
//
//	@Summary		Spreadsheet integration status
//	@Description	Report whether the Google Sheets credentials are configured and which spreadsheet is targeted.
//	@Tags			google
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/google/status [get]
func GoogleStatus(c *gin.Context) {
	var spreadsheetID interface{}
	if id := sheets.SpreadsheetID(); id != "" {
		spreadsheetID = id
	}

	c.JSON(http.StatusOK, gin.H{
		"configured":    sheets.Configured(),
		"spreadsheetId": spreadsheetID,
	})
}
