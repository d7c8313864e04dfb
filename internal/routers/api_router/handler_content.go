package api_router

import (
	"github.com/haierkeys/second-brain-service/internal/app"
	"github.com/haierkeys/second-brain-service/internal/dto"
	"github.com/haierkeys/second-brain-service/internal/service"
	pkgapp "github.com/haierkeys/second-brain-service/pkg/app"
	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/convert"

	"github.com/gin-gonic/gin"
)

// ContentHandler 收藏条目 API 路由处理器
type ContentHandler struct {
	*Handler
}

// NewContentHandler 创建 ContentHandler 实例
func NewContentHandler(app *app.App) *ContentHandler {
	return &ContentHandler{
		Handler: &Handler{App: app},
	}
}

// toResponseErr maps service failures onto the response envelope.
// Contract failures arrive as *code.Code, everything else is upstream.
func toResponseErr(response *pkgapp.Response, err error) {
	if cObj, ok := err.(*code.Code); ok {
		response.ToResponse(cObj)
		return
	}
	response.ToResponse(code.Failed)
}

// pathID parses the :id route parameter. A malformed id is a request
// error, not a missing record.
func pathID(c *gin.Context) (int64, bool) {
	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List returns every content item owned by the authenticated user.
func (h *ContentHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	sub := pkgapp.GetSub(c)
	list, err := h.App.ContentService.List(c.Request.Context(), sub)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.ContentListResponse{Content: list}))
}

// Create stores a new note or link item.
func (h *ContentHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ContentRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs))
		return
	}

	sub := pkgapp.GetSub(c)
	created, err := h.App.ContentService.Create(c.Request.Context(), sub, params)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.SuccessCreate.WithData(&dto.ContentResponse{Content: created}))
}

// Edit replaces an existing item, clearing fields of the previous type.
func (h *ContentHandler) Edit(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ContentRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs))
		return
	}

	id, ok := pathID(c)
	if !ok {
		response.ToResponse(code.ErrorInvalidParams)
		return
	}
	sub := pkgapp.GetSub(c)
	updated, err := h.App.ContentService.Edit(c.Request.Context(), sub, id, params)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.ContentResponse{Content: updated}))
}

// Delete removes an item and, for images, its stored object.
func (h *ContentHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := pathID(c)
	if !ok {
		response.ToResponse(code.ErrorInvalidParams)
		return
	}
	sub := pkgapp.GetSub(c)
	if err := h.App.ContentService.Delete(c.Request.Context(), sub, id); err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// uploadFromForm extracts and pre-checks the multipart image field.
func uploadFromForm(c *gin.Context) (*service.UploadFile, *code.Code) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		return nil, code.ErrorUploadFileMissing
	}
	if cObj := service.CheckUpload(fileHeader.Header.Get("Content-Type"), fileHeader.Size); cObj != nil {
		return nil, cObj
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, code.ErrorUploadFileMissing
	}
	return &service.UploadFile{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		File:        f,
	}, nil
}

// CreateImage stores an uploaded image and creates an image item for it.
func (h *ContentHandler) CreateImage(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	upload, cObj := uploadFromForm(c)
	if cObj != nil {
		response.ToResponse(cObj)
		return
	}
	defer func() {
		if closer, ok := upload.File.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	params := &dto.ImageContentRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs))
		return
	}

	sub := pkgapp.GetSub(c)
	created, err := h.App.ContentService.CreateImage(c.Request.Context(), sub, params, upload)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.SuccessCreate.WithData(&dto.ContentResponse{Content: created}))
}

// EditImage replaces the stored image of an existing item.
func (h *ContentHandler) EditImage(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	upload, cObj := uploadFromForm(c)
	if cObj != nil {
		response.ToResponse(cObj)
		return
	}
	defer func() {
		if closer, ok := upload.File.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	params := &dto.ImageContentRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs))
		return
	}

	id, ok := pathID(c)
	if !ok {
		response.ToResponse(code.ErrorInvalidParams)
		return
	}
	sub := pkgapp.GetSub(c)
	updated, err := h.App.ContentService.EditImage(c.Request.Context(), sub, id, params, upload)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.ContentResponse{Content: updated}))
}
