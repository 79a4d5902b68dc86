package music

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MusicController struct {
	Service MusicServiceAPI
}

func (mc *MusicController) GetSettings(c *gin.Context) {
	settings, err := mc.Service.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (mc *MusicController) UpdateSettings(c *gin.Context) {
	var req UpdateMusicSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	row, err := mc.Service.UpdateSettings(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": row})
}
