package tplx

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
)

const (
	DelimLeft  = "[["
	DelimRight = "]]"
)

func New(name string) *template.Template {
	return template.New(name).Delims(DelimLeft, DelimRight).Option("missingkey=zero").Funcs(funcMap)
}

var funcMap = template.FuncMap{
	"default": func(fallback string, value string) string {
		if value == "" {
			return fallback
		}
		return value
	},
}

func RenderFile(file string, data any) ([]byte, error) {
	tpl, err := New(filepath.Base(file)).ParseFiles(file)
	if err != nil {
		return nil, fmt.Errorf("cannot parse template file '%s': %w", file, err)
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("cannot render template file '%s': %w", file, err)
	}
	return out.Bytes(), nil
}
