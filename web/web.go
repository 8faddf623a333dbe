// Package web embeds the HTML screens rendered by the local UI server.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"food-delivery-client/statemachine"
)

//go:embed templates/*.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"money":  Money,
	"status": statemachine.Label,
	"inc":    func(n int) int { return n + 1 },
	"dec":    func(n int) int { return n - 1 },
}

// Money formats an amount the way every price is shown in the UI
func Money(v float64) string {
	return fmt.Sprintf("S/. %.2f", v)
}

// Templates parses every embedded screen
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl"))
}
