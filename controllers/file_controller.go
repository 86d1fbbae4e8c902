package controllers

import (
	"net/http"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
	"github.com/NascpHisCommunity/Nascap-website/services"
	"github.com/NascpHisCommunity/Nascap-website/userctx"
)

// maxUploadSize caps multipart uploads at 64 MiB
const maxUploadSize = 64 << 20

// FileController handles admin file management requests
type FileController struct {
	services *services.Services
}

// NewFileController creates a new file controller
func NewFileController(services *services.Services) *FileController {
	return &FileController{services: services}
}

// Index handles GET /admin/files
func (c *FileController) Index(w http.ResponseWriter, r *http.Request) {
	filter := repositories.FileFilter{
		Category: r.URL.Query().Get("category"),
		FileType: models.FileType(r.URL.Query().Get("file_type")),
		Limit:    queryLimit(r),
	}

	files, err := c.services.File.ListFiles(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load files: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, files)
}

// Upload handles POST /admin/files with a multipart body: the file part plus
// title/description/category/file_type fields
func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse upload: "+err.Error())
		return
	}

	src, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part: "+err.Error())
		return
	}
	defer src.Close()

	form := models.FileForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		FileType:    r.FormValue("file_type"),
	}

	file, err := c.services.File.Upload(r.Context(), &form, header.Filename, src, userctx.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

// Update handles PUT /admin/files/{id}
func (c *FileController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid file ID")
		return
	}

	var form models.FileForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	file, err := c.services.File.UpdateFile(r.Context(), id, &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// Delete handles DELETE /admin/files/{id}
func (c *FileController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid file ID")
		return
	}

	if err := c.services.File.DeleteFile(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
