package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// defaultScalarPage is served when the docs directory has no scalar.html of its own
const defaultScalarPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Trade Bot 365 Admin API</title>
</head>
<body>
<script id="api-reference" data-url="/docs/swagger.json"></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// DocsHandler serves the API reference generated from the handler annotations
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	oas3Path   string
}

// NewDocsHandler creates a documentation handler reading from docsDir. swagger.json is produced
// by swag from the annotations in this package.
func NewDocsHandler(docsDir string) *DocsHandler {
	scalarHTML, err := os.ReadFile(filepath.Join(docsDir, "scalar.html"))
	if err != nil || len(scalarHTML) == 0 {
		scalarHTML = []byte(defaultScalarPage)
	}

	return &DocsHandler{
		scalarHTML: scalarHTML,
		scalarETag: generateETag(scalarHTML),
		oas3Path:   filepath.Join(docsDir, "swagger.json"),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI document loaded by the Scalar page
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.oas3Path)
}

func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("\"%x\"", md5.Sum(data))
}
