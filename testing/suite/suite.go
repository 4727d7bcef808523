package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// WriteFiles creates a fresh directory holding the given name → content files
// and returns its path. The directory is removed when the test ends.
func (that *Suite) WriteFiles(files map[string]string) string {
	that.Helper()

	dir := that.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			that.Fatalf("could not write %s: %v", name, err)
		}
	}

	return dir
}

// WriteCorpus renders every page as a small HTML document with one anchor
// per link and writes the corpus to a fresh directory.
func (that *Suite) WriteCorpus(links map[string][]string) string {
	that.Helper()

	files := make(map[string]string, len(links))
	for page, targets := range links {
		files[page] = Page(page, targets...)
	}

	return that.WriteFiles(files)
}

// Page returns an HTML document titled title that links to every target.
func Page(title string, targets ...string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>%s</title></head>\n<body>\n<h1>%s</h1>\n", title, title)
	for _, target := range targets {
		fmt.Fprintf(&sb, "<div><a href=\"%s\">%s</a></div>\n", target, target)
	}
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}
