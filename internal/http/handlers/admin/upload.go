package admin

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/fixture-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const defaultUploadMaxSize int64 = 10 << 20

// openUpload 读取 multipart 字段 file，超出上限时返回 413
func (h *Handler) openUpload(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, response.CodeTooLarge, fmt.Sprintf("檔案超過 %d bytes 上限", tooLarge.Limit), err)
			return nil, false
		}
		respondError(c, response.CodeBadRequest, "缺少上傳檔案", err)
		return nil, false
	}
	maxSize := defaultUploadMaxSize
	if h.Config != nil && h.Config.Upload.MaxSize > 0 {
		maxSize = h.Config.Upload.MaxSize
	}
	if fileHeader.Size > maxSize {
		respondError(c, response.CodeTooLarge, fmt.Sprintf("檔案超過 %d bytes 上限", maxSize), nil)
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, response.CodeBadRequest, "無法讀取上傳檔案", err)
		return nil, false
	}
	return file, true
}

// handleImport 打开上传文件并交给导入函数
func (h *Handler) handleImport(c *gin.Context, kind string, importFn func(io.Reader) error) {
	file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	if err := importFn(file); err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("spreadsheet_imported", "kind", kind)
	response.SuccessOK(c)
}
