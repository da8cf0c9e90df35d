package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planboard/planboard-backend/internal/schedule/service"
)

// maxUploadBytes caps a single uploaded file.
const maxUploadBytes = 2 << 20

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes))
}

func (h *Handler) importPlan(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file is required"})
		return
	}
	data, err := readUpload(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "could not read upload"})
		return
	}

	out, err := h.svc.ImportPlan(c.Request.Context(), c.Param("id"), fh.Filename, data)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondImport(c, out)
}

func (h *Handler) importNotes(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "at least one file is required"})
		return
	}

	files := make([]service.NoteFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "could not read upload"})
			return
		}
		files = append(files, service.NoteFile{Name: fh.Filename, Data: data})
	}

	out, err := h.svc.ImportNotes(c.Request.Context(), c.Param("id"), files)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondImport(c, out)
}

func respondImport(c *gin.Context, out *service.ImportOutcome) {
	body := gin.H{
		"ok":       true,
		"changed":  out.State.Changed,
		"project":  out.State.Project,
		"imported": out.Created,
		"skipped":  out.Skipped,
	}
	if out.State.Warnings != nil {
		body["warnings"] = out.State.Warnings
	}
	c.JSON(http.StatusOK, body)
}
