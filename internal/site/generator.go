package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/convert"
	"github.com/gerunddev/sitegen/internal/logger"
)

// PageError records a page that failed to generate
type PageError struct {
	Source string
	Err    error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// BuildResult represents the result of a build
type BuildResult struct {
	BuildID        string
	PagesGenerated int
	StaticFiles    int
	Errors         []error
	StartTime      time.Time
	EndTime        time.Time
}

// Duration returns how long the build took
func (r *BuildResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Generator renders markdown pages into the output directory
type Generator struct {
	config *config.Config
	logger *logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		config: cfg,
		logger: logger.Discard(),
	}
}

// SetLogger sets the logger for the generator
func (g *Generator) SetLogger(l *logger.Logger) {
	g.logger = l
}

// Build wipes the output directory, copies static assets and generates
// every page. A page that fails is logged and recorded; the build goes on.
func (g *Generator) Build() (*BuildResult, error) {
	result := &BuildResult{
		BuildID:   uuid.New().String(),
		StartTime: time.Now(),
	}
	g.logger.BuildStarted(result.BuildID, g.config.ContentDir, g.config.OutputDir)

	if err := os.RemoveAll(g.config.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to clean output directory: %w", err)
	}
	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if g.config.StaticDir != "" {
		if _, err := os.Stat(g.config.StaticDir); err == nil {
			n, err := CopyDir(g.config.StaticDir, g.config.OutputDir)
			if err != nil {
				return nil, err
			}
			result.StaticFiles = n
			g.logger.StaticCopied(g.config.StaticDir, g.config.OutputDir, n)
		} else {
			g.logger.Skipped(g.config.StaticDir, "static directory not found")
		}
	}

	if err := g.generateInto(result, g.config.ContentDir, g.config.TemplatePath, g.config.OutputDir); err != nil {
		return nil, err
	}

	result.EndTime = time.Now()
	g.logger.BuildCompleted(result.BuildID, result.PagesGenerated, len(result.Errors), result.Duration())
	return result, nil
}

// GeneratePages renders every .md file under contentDir into destDir,
// mirroring the directory layout with .html extensions.
func (g *Generator) GeneratePages(contentDir, templatePath, destDir string) (*BuildResult, error) {
	result := &BuildResult{
		BuildID:   uuid.New().String(),
		StartTime: time.Now(),
	}
	if err := g.generateInto(result, contentDir, templatePath, destDir); err != nil {
		return nil, err
	}
	result.EndTime = time.Now()
	return result, nil
}

// GeneratePage renders a single markdown file through the template
func (g *Generator) GeneratePage(from, templatePath, dest string) error {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}
	_, err = g.generatePage(from, string(tmpl), dest)
	return err
}

func (g *Generator) generateInto(result *BuildResult, contentDir, templatePath, destDir string) error {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			g.logger.Skipped(path, "not a markdown file")
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")

		title, err := g.generatePage(path, string(tmpl), dest)
		if err != nil {
			g.logger.PageError(path, err)
			result.Errors = append(result.Errors, &PageError{Source: path, Err: err})
			return nil
		}

		result.PagesGenerated++
		g.logger.PageGenerated(path, dest, title)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk content directory: %w", err)
	}
	return nil
}

func (g *Generator) generatePage(from, tmpl, dest string) (string, error) {
	markdown, err := os.ReadFile(from)
	if err != nil {
		return "", err
	}

	title, err := convert.ExtractTitle(string(markdown))
	if err != nil {
		return "", err
	}

	content, err := convert.MarkdownToHTML(string(markdown))
	if err != nil {
		return "", err
	}

	page := RenderTemplate(tmpl, title, content, g.config.BasePath)

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return title, nil
}
