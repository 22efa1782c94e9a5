package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/oxtoacart/bpool"
	"github.com/rs/zerolog/log"
)

//go:embed templates
var templateFS embed.FS

const (
	BufferPoolSize = 64
)

var (
	templates map[string]*template.Template
	initOnce  sync.Once

	bufpool = bpool.NewBufferPool(BufferPoolSize)
)

// Init parses the email templates. It is safe to call more than once.
func Init() {
	initOnce.Do(loadTemplates)
}

func loadTemplates() {
	log.Info().Msg("starting initialization of template system")

	templates = make(map[string]*template.Template)

	bases, err := fs.Glob(templateFS, "templates/bases/*.gohtml")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load base HTML templates")
	}

	layouts, err := fs.Glob(templateFS, "templates/*.gohtml")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load layout HTML templates")
	}

	for _, curr := range layouts {
		files := append([]string{curr}, bases...)
		t, err := template.ParseFS(templateFS, files...)
		if err != nil {
			log.Fatal().Err(err).Str("template", curr).Msg("could not parse template")
		}
		templates[filepath.Base(curr)] = t
	}

	log.Debug().Int("num_templates", len(templates)).Msg("templates loaded")
}

// Email renders the named template to a string
func Email(name string, data any) (string, error) {
	Init()

	templ := templates[name]
	if templ == nil {
		log.Error().Str("name", name).Msg("could not find template")
		return "", fmt.Errorf("render: Email: no template named %s", name)
	}

	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if err := templ.ExecuteTemplate(buf, name, data); err != nil {
		log.Error().Err(err).Str("name", name).Msg("could not render email")
		return "", fmt.Errorf("render: Email: %w", err)
	}

	return buf.String(), nil
}

// JSON writes v with the given status. Encoding happens before anything is written so a marshalling failure still
// produces a well formed 500.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		log.Error().Err(err).Caller(1).Msg("could not encode JSON response")
		JSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Caller(1).Msg("could not write JSON response")
	}
}

func JSONError(w http.ResponseWriter, msg string, statusCode int) {
	resp := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: false,
		Message: msg,
	}

	// this can never fail to marshal
	bytes, _ := json.Marshal(resp)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err := w.Write(bytes)
	if err != nil {
		log.Error().Err(err).Caller(1).Msg("could not write JSON error to response")
	}
}
