package content

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service ContentServiceAPI
}

func (cc *ContentController) GetPageContent(c *gin.Context) {
	page := strings.TrimSpace(c.Param("page"))
	if page == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page slug is required"})
		return
	}

	sections, err := cc.Service.GetPageContent(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": sections})
}

func (cc *ContentController) UpsertSection(c *gin.Context) {
	page := strings.TrimSpace(c.Param("page"))
	section := strings.TrimSpace(c.Param("section"))

	var req UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := cc.Service.UpsertSection(page, section, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}
