package templates

import (
	"strings"
	"time"
)

// Substitute replaces every literal occurrence of {{tag}} in content with
// the mapped value. Matching is exact and case-sensitive; there are no
// nested or escaped braces, and unrecognized tags are left verbatim.
func Substitute(content string, values map[string]string) string {
	for tag, value := range values {
		content = strings.ReplaceAll(content, "{{"+tag+"}}", value)
	}
	return content
}

// PreviewValues builds the synthetic example mapping used for template
// previews, mirroring what the dashboard shows.
func PreviewValues(now time.Time, username string) map[string]string {
	if username == "" {
		username = "admin"
	}
	return map[string]string{
		"protocol_id": "20250101120000123",
		"title":       "Exemplo de Título de Processo",
		"description": "Este é um exemplo de descrição de conteúdo que será substituído dinamicamente pelo sistema quando o protocolo for gerado.",
		"created_at":  now.Format("02/01/2006 15:04:05"),
		"username":    username,
	}
}
