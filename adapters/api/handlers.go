package api

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"sheetex/app"
	"sheetex/domain/tabular"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleExtract accepts a multipart upload ("file") plus the "table_fields"
// form value and returns the tool's message list. Transport-level problems
// (no file, oversize upload) are HTTP errors; everything past that point is
// the tool's own message contract.
func (s *Server) handleExtract(c *gin.Context) {
	requestID := c.GetString("request_id")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Printf("[api] %s rejected: no file uploaded: %v", requestID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > s.maxUploadBytes {
		log.Printf("[api] %s rejected: file too large: %d bytes", requestID, header.Size)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"file size %d bytes exceeds the %d byte limit", header.Size, s.maxUploadBytes,
		)})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[api] %s failed reading upload: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	params := app.ToolParameters{
		TableFields: c.PostForm("table_fields"),
		File: tabular.RawFile{
			Extension: filepath.Ext(header.Filename),
			Content:   content,
		},
	}

	log.Printf("[api] %s extracting from %s (%d bytes)", requestID, header.Filename, len(content))
	messages := s.tool.Invoke(c.Request.Context(), params)
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
