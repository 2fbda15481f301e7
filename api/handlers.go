package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/shrutlekh/shrutlekh/errors"
	"github.com/shrutlekh/shrutlekh/export"
	"github.com/shrutlekh/shrutlekh/logger"
	"github.com/shrutlekh/shrutlekh/observability"
	"github.com/shrutlekh/shrutlekh/server"
	"github.com/shrutlekh/shrutlekh/service"
	"github.com/shrutlekh/shrutlekh/validation"
	"github.com/shrutlekh/shrutlekh/web"
)

// AllowedAudioExtensions are the upload file types accepted by the
// transcribe endpoint.
var AllowedAudioExtensions = []string{"wav", "mp3", "m4a", "flac", "aac"}

// Handler holds the API endpoints.
type Handler struct {
	svc     *service.TranscriptionService
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewHandler creates the API handler. metrics may be nil, in which case
// metric recording is skipped.
func NewHandler(svc *service.TranscriptionService, metrics *observability.Metrics, log *logger.Logger) *Handler {
	return &Handler{
		svc:     svc,
		metrics: metrics,
		log:     log.WithComponent("api"),
	}
}

// RegisterRoutes mounts the upload page and the API endpoints on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.IndexPage)

	group := r.Group("/api")
	group.POST("/transcribe", h.Transcribe)
	group.POST("/download/txt", h.DownloadTxt)
	group.POST("/download/docx", h.DownloadDocx)
}

// IndexPage serves the embedded upload page.
func (h *Handler) IndexPage(c *gin.Context) {
	page, err := web.Index()
	if err != nil {
		h.log.Error("embedded page missing", logger.ErrorFields("index", err))
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Transcribe accepts a multipart audio upload, runs recognition, and
// returns the Unicode transcript with its Krutidev encoding.
func (h *Handler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		server.RespondWithError(c, apperrors.MissingField("audio"))
		return
	}

	v := validation.New().
		Required("audio", fileHeader.Filename).
		FileExtension("audio", fileHeader.Filename, AllowedAudioExtensions)
	if lang := c.PostForm("language"); lang != "" {
		v.MaxLength("language", lang, 16)
	}
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("audio", "could not read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.svc.Transcribe(c.Request.Context(), service.TranscribeInput{
		Filename: fileHeader.Filename,
		Language: c.PostForm("language"),
		Audio:    file,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, result)
}

// downloadRequest is the body of the download endpoints. Text is a pointer
// so that an absent field can be told apart from an empty string: encoded
// output may legitimately be empty (a lone virama encodes to nothing) and
// is served verbatim.
type downloadRequest struct {
	Text *string `json:"text"`
}

func bindDownload(c *gin.Context) (string, bool) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("text", "request body must be JSON with a text field"))
		return "", false
	}
	if req.Text == nil {
		server.RespondWithError(c, apperrors.MissingField("text"))
		return "", false
	}
	return *req.Text, true
}

// DownloadTxt returns the posted text verbatim as a plain-text attachment.
func (h *Handler) DownloadTxt(c *gin.Context) {
	text, ok := bindDownload(c)
	if !ok {
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanExport)
	defer span.End()

	var buf bytes.Buffer
	if err := export.WriteText(&buf, text); err != nil {
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	if h.metrics != nil {
		h.metrics.RecordExport(ctx, "txt")
	}

	c.Header("Content-Disposition", `attachment; filename="krutidev`+export.TextExtension+`"`)
	c.Data(http.StatusOK, export.TextContentType, buf.Bytes())
}

// DownloadDocx returns the posted text as a Word document whose runs use
// the Kruti Dev font.
func (h *Handler) DownloadDocx(c *gin.Context) {
	text, ok := bindDownload(c)
	if !ok {
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanExport)
	defer span.End()

	var buf bytes.Buffer
	if err := export.WriteDocx(&buf, text); err != nil {
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	if h.metrics != nil {
		h.metrics.RecordExport(ctx, "docx")
	}

	c.Header("Content-Disposition", `attachment; filename="krutidev`+export.DocxExtension+`"`)
	c.Data(http.StatusOK, export.DocxContentType, buf.Bytes())
}
