package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type Server struct {
	engine *gin.Engine
}

// New builds the gin engine serving the portfolio page. The copy is
// rendered once here; requests only pick the nav state.
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	page, err := NewPage(cfg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg.Server.Gzip {
		r.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	r.Use(cacheControl())
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mounting static files: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	page.Register(r)

	return &Server{engine: r}, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}
