package site

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/sheharyar/portfolio/internal/portfolio"
	"github.com/sheharyar/portfolio/internal/views"
)

// Export writes index.html and the shell assets into dir so the page can be hosted statically.
func Export(dir string, site portfolio.Site, projects []portfolio.Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	index := filepath.Join(dir, "index.html")
	f, err := os.Create(index)
	if err != nil {
		return fmt.Errorf("create %s: %w", index, err)
	}
	page := views.NewPage(site, portfolio.Render(projects))
	if err := views.Templates().ExecuteTemplate(f, "index.html", page); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", index, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", index, err)
	}

	if err := copyAssets(filepath.Join(dir, "static")); err != nil {
		return err
	}

	log.Printf("exported dir=%s cards=%d", dir, len(projects))
	return nil
}

func copyAssets(dst string) error {
	assets := Assets()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", target, err)
		}
		return nil
	})
}
