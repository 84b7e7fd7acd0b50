// Package site serves the portfolio page over HTTP.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sheharyar/portfolio/internal/portfolio"
	"github.com/sheharyar/portfolio/internal/views"
)

const shutdownTimeout = 5 * time.Second

// Options configures the HTTP engine.
type Options struct {
	Mode     string
	Site     portfolio.Site
	Projects []portfolio.Entry
}

// New builds the gin engine serving the page at / and the shell assets under /static.
func New(opts Options) *gin.Engine {
	return newEngine(opts, views.Templates())
}

func newEngine(opts Options, tmpl *template.Template) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(RequestID(), gin.Logger(), gin.Recovery())

	r.StaticFS("/static", http.FS(Assets()))

	page := views.NewPage(opts.Site, portfolio.Render(opts.Projects))
	r.GET("/", func(c *gin.Context) {
		renderHTML(c, tmpl, "index.html", page)
	})

	return r
}

// renderHTML executes the template into a buffer first so a failed render
// is answered with 500 instead of a truncated 200.
func renderHTML(c *gin.Context, tmpl *template.Template, name string, data any) {
	if err := c.Request.Context().Err(); err != nil {
		c.Abort()
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render failed template=%s request_id=%s err=%v", name, requestIDFrom(c), err)
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening addr=%s mode=%s", addr, gin.Mode())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("server stopped addr=%s", addr)
	return nil
}
