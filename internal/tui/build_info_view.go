package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

func renderBuildInfoWindow(info models.BuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: go-notes client\n")
	b.WriteString(info.String())
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
