package weburl

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize completa el esquema de una URL si falta (se asume https) y
// verifica que el resultado sea una URL http(s) absoluta con host.
// Es la preparación previa a entregar el enlace al navegador.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("url vacía")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("url inválida: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url sin host: %q", raw)
	}
	return u.String(), nil
}
