package portfolio

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-web/internal/shared/metrics"
	"portfolio-web/internal/shared/server/respond"
	"portfolio-web/internal/shared/telemetry"
	"portfolio-web/internal/web"
)

// Handler wires HTTP handlers to the portfolio service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPageRoutes attaches the browser-facing routes for GET and HEAD.
func (h *Handler) RegisterPageRoutes(r gin.IRoutes) {
	r.GET(HomePath, h.home)
	r.HEAD(HomePath, h.home)
	r.GET(DownloadPath, h.downloadResume)
	r.HEAD(DownloadPath, h.downloadResume)
}

// RegisterRoutes attaches the JSON API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(InfoPath, h.resumeInfo)
}

func (h *Handler) home(c *gin.Context) {
	metrics.IncHomeRender()
	c.HTML(http.StatusOK, web.HomeTemplate, nil)
}

func (h *Handler) downloadResume(c *gin.Context) {
	start := time.Now()

	obj, err := h.Svc.OpenResume(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			metrics.IncResumeNotFound()
			respond.Text(c, http.StatusNotFound, respond.CodeNotFound, notFoundMessage(h.Svc.ResumePath()))
			return
		}
		_ = c.Error(err)
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternalError, "failed to load resume", nil)
		return
	}
	defer obj.Body.Close()

	c.Header("Content-Type", resumeContentType)
	c.Header("Content-Length", strconv.FormatInt(obj.SizeBytes, 10))
	c.Header("Content-Disposition", attachmentDisposition(h.Svc.DownloadName))
	c.Status(http.StatusOK)
	if c.Request.Method == http.MethodHead {
		c.Writer.WriteHeaderNow()
		return
	}

	written, err := io.Copy(c.Writer, obj.Body)
	metrics.AddResumeDownloadBytes(written)
	if err != nil {
		// Headers are already sent; record the failure and let the connection close.
		_ = c.Error(err)
		telemetry.Error("resume.stream_failed", map[string]any{
			"request_id": c.GetString("requestId"),
			"path":       obj.Path,
			"written":    written,
			"error":      err,
		})
		return
	}
	metrics.IncResumeDownload()
	metrics.ObserveResumeDownloadDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
}

func (h *Handler) resumeInfo(c *gin.Context) {
	info, err := h.Svc.Info(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, notFoundMessage(h.Svc.ResumePath()), nil)
			return
		}
		_ = c.Error(err)
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternalError, "failed to describe resume", nil)
		return
	}
	respond.OK(c, info)
}

func notFoundMessage(path string) string {
	return fmt.Sprintf("Resume not found at: %s", path)
}

// attachmentDisposition formats a Content-Disposition value for name.
// Non-ASCII names get an ASCII fallback plus an RFC 6266 filename* parameter.
func attachmentDisposition(name string) string {
	fallback, ascii := asciiFallback(name)
	if ascii {
		return fmt.Sprintf(`attachment; filename="%s"`, name)
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, url.PathEscape(name))
}

func asciiFallback(name string) (string, bool) {
	out := make([]byte, 0, len(name))
	ascii := true
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			ascii = false
			out = append(out, '_')
			continue
		}
		out = append(out, byte(r))
	}
	return string(out), ascii
}
