package notify

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	texttemplate "text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html templates/*.txt
var embedded embed.FS

type Kind string

const (
	KindCustomer Kind = "customer"
	KindOperator Kind = "operator"
)

// Variables are the keys available to every template.
var Variables = []string{
	"id", "nome", "email", "telefone", "rua", "numero", "complemento", "bairro",
	"cidade", "uf", "cep", "produto", "tipo_produto", "cor", "quantidade_paginas",
	"quantidade", "estampa", "observacoes", "data_criacao", "ip_cliente", "status", "marca",
}

var (
	_doubleBrace = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
	_singleBrace = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

	_keywords = map[string]bool{"end": true, "else": true, "break": true, "continue": true}
)

type Rendered struct {
	Text string
	HTML string
}

// Renderer holds the parsed plain and HTML templates for each Kind.
type Renderer struct {
	text map[Kind]*texttemplate.Template
	html map[Kind]*htmltemplate.Template
}

// NewRenderer parses the built-in templates. Files named <kind>.txt or
// <kind>.html inside dir, when dir is set, replace the built-in ones.
func NewRenderer(dir string) (*Renderer, error) {
	const op = "notify.NewRenderer"

	r := &Renderer{
		text: make(map[Kind]*texttemplate.Template),
		html: make(map[Kind]*htmltemplate.Template),
	}

	for _, kind := range []Kind{KindCustomer, KindOperator} {
		src, err := loadSource(dir, string(kind)+".txt")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		r.text[kind], err = texttemplate.New(string(kind)).
			Funcs(sprig.TxtFuncMap()).
			Parse(RewriteLegacy(src))
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s text: %w", op, kind, err)
		}

		src, err = loadSource(dir, string(kind)+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		r.html[kind], err = htmltemplate.New(string(kind)).
			Funcs(sprig.HtmlFuncMap()).
			Parse(RewriteLegacy(src))
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s html: %w", op, kind, err)
		}
	}

	return r, nil
}

func (r *Renderer) Render(kind Kind, data map[string]any) (Rendered, error) {
	const op = "notify.Renderer.Render"

	textTmpl, ok := r.text[kind]
	if !ok {
		return Rendered{}, fmt.Errorf("%s: unknown template kind %q", op, kind)
	}

	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return Rendered{}, fmt.Errorf("%s: execute %s text: %w", op, kind, err)
	}
	if err := r.html[kind].Execute(&html, data); err != nil {
		return Rendered{}, fmt.Errorf("%s: execute %s html: %w", op, kind, err)
	}

	return Rendered{Text: text.String(), HTML: html.String()}, nil
}

// RewriteLegacy turns {name} and {{name}} placeholders into {{.name}} for
// every known variable. Unknown {{name}} placeholders are dropped, except
// template keywords; unknown {name} ones are left as they are.
func RewriteLegacy(src string) string {
	known := make(map[string]bool, len(Variables))
	for _, v := range Variables {
		known[v] = true
	}

	src = _doubleBrace.ReplaceAllStringFunc(src, func(m string) string {
		name := _doubleBrace.FindStringSubmatch(m)[1]
		switch {
		case known[name]:
			return "{{." + name + "}}"
		case _keywords[name]:
			return m
		default:
			return ""
		}
	})

	var out bytes.Buffer
	last := 0
	for _, loc := range _singleBrace.FindAllStringSubmatchIndex(src, -1) {
		start, end := loc[0], loc[1]
		name := src[loc[2]:loc[3]]
		if !known[name] ||
			(start > 0 && src[start-1] == '{') ||
			(end < len(src) && src[end] == '}') {
			continue
		}
		out.WriteString(src[last:start])
		out.WriteString("{{." + name + "}}")
		last = end
	}
	out.WriteString(src[last:])

	return out.String()
}

func loadSource(dir, name string) (string, error) {
	if dir != "" {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read template %s: %w", name, err)
		}
	}

	b, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("read embedded template %s: %w", name, err)
	}
	return string(b), nil
}
