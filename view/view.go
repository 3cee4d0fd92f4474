// Package view renders the HTML templates. Parsed templates are cached
// per file; set DEV=1 to reparse on every request while editing.
package view

import (
	"crypto/sha1"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/healthtotech/healthbuddy/i18n"
	"github.com/healthtotech/healthbuddy/internal/middleware"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates", "../../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the shared func map: i18n lookups plus small helpers.
func Funcs(r *http.Request) template.FuncMap {
	lang := middleware.LangFrom(r)
	return template.FuncMap{
		"t":     func(code string) string { return i18n.T(lang, code) },
		"lang":  func() string { return lang },
		"year":  func() int { return time.Now().Year() },
		"asset": func(path string) string { return versionedAsset(path) },
	}
}

// versionedAsset returns /static/<name>?v=<hash> for cache busting.
func versionedAsset(rel string) string {
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") || strings.HasPrefix(rel, "//") {
		return rel
	}
	b, err := os.ReadFile(filepath.Join("static", rel))
	if err != nil {
		return "/static/" + rel
	}
	h := sha1.Sum(b)
	return "/static/" + rel + "?v=" + fmt.Sprintf("%x", h[:8])
}

// Render parses and executes a template file with the shared funcs.
// name is the filename, e.g. "dashboard.html". Templates are full
// documents; there is no layout wrapping.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	once.Do(detectBase)
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}

	// The func map closes over the request language, so cache per language.
	key := middleware.LangFrom(r) + ":" + name
	devMode := os.Getenv("DEV") == "1"
	if !devMode {
		tplCache.RLock()
		t, ok := tplCache.m[key]
		tplCache.RUnlock()
		if ok && t != nil {
			return t.Execute(w, data)
		}
	}

	mainPath := filepath.Join(baseDir, name)
	if _, err := os.Stat(mainPath); err != nil {
		// The working directory differs between dev runs and tests;
		// retry the parent levels before giving up.
		for _, c := range []string{
			filepath.Join("templates", name),
			filepath.Join("../templates", name),
			filepath.Join("../../templates", name),
			filepath.Join("../../../templates", name),
		} {
			if fi, e2 := os.Stat(c); e2 == nil && !fi.IsDir() {
				baseDir = filepath.Dir(c)
				mainPath = c
				break
			}
		}
		if _, err2 := os.Stat(mainPath); err2 != nil {
			return err
		}
	}

	t, err := template.New(name).Funcs(Funcs(r)).ParseFiles(mainPath)
	if err != nil {
		return err
	}
	if !devMode {
		tplCache.Lock()
		tplCache.m[key] = t
		tplCache.Unlock()
	}
	return t.Execute(w, data)
}
