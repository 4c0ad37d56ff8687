package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/concord/internal/config"
	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/analysis"
	"github.com/agenthands/concord/internal/core/model"
	"github.com/agenthands/concord/internal/extract"
)

type Server struct {
	Comparator     *core.Comparator
	Analyzer       *analysis.Analyzer
	Extractor      extract.Extractor
	Log            logrus.FieldLogger
	MaxUploadBytes int64
	Mode           string
}

// NewServer wires the comparator stack from cfg. cfg is expected to be validated.
func NewServer(cfg *config.Config, log logrus.FieldLogger) *Server {
	comparator := core.NewComparator(cfg.Comparator.Options())

	return &Server{
		Comparator:     comparator,
		Analyzer:       analysis.NewAnalyzer(comparator, log),
		Extractor:      extract.PlainText{},
		Log:            log,
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
		Mode:           cfg.Server.Mode,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	gin.SetMode(s.Mode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	r.POST("/compare", s.Compare)
	r.POST("/analyze", s.Analyze)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("Handled request")
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type CompareRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

func (s *Server) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, s.Comparator.Compare(req.TextA, req.TextB))
}

// Analyze accepts a multipart form with one or more "documents" files. Files that are
// too large or not text are kept as empty documents, so the analyzer reports them as
// skipped and counts them toward the upload minimum.
func (s *Server) Analyze(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	headers := form.File["documents"]
	docs := make([]model.Document, 0, len(headers))
	for _, h := range headers {
		doc := model.Document{Filename: h.Filename}

		if h.Size > s.MaxUploadBytes {
			s.Log.WithFields(logrus.Fields{"file": h.Filename, "size": h.Size}).Warn("Upload exceeds size limit")
			docs = append(docs, doc)
			continue
		}

		f, err := h.Open()
		if err != nil {
			s.Log.WithError(err).WithField("file", h.Filename).Error("Failed to open upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.MaxUploadBytes))
		f.Close()
		if err != nil {
			s.Log.WithError(err).WithField("file", h.Filename).Error("Failed to read upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}

		text, err := s.Extractor.Extract(h.Filename, data)
		if err != nil {
			s.Log.WithError(err).WithField("file", h.Filename).Warn("Failed to extract text")
		} else {
			doc.Content = text
		}
		docs = append(docs, doc)
	}

	result, err := s.Analyzer.Analyze(c.Request.Context(), docs)
	if err != nil {
		if analysis.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.Log.WithError(err).Error("Failed to analyze documents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze documents"})
		return
	}

	c.JSON(http.StatusOK, result)
}
