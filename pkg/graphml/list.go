package graphml

import (
	"strings"
)

// list attribute (mis. edge yang namanya lebih dari satu) disimpan sebagai string dengan format list python: ['A', 'B']

func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

func isList(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// parseList kebalikan formatList. string yang bukan list dianggap list satu elemen.
func parseList(s string) []string {
	if !isList(s) {
		return []string{s}
	}
	body := strings.TrimSpace(s)
	body = body[1 : len(body)-1]

	items := []string{}
	var sb strings.Builder
	var quoteChar rune
	inItem := false
	quoted := false
	escaped := false
	flush := func() {
		if !inItem {
			return
		}
		// isi elemen yang di-quote tidak di-trim
		if quoted {
			items = append(items, sb.String())
		} else {
			items = append(items, strings.TrimSpace(sb.String()))
		}
	}
	for _, c := range body {
		switch {
		case escaped:
			sb.WriteRune(c)
			escaped = false
		case quoteChar != 0 && c == '\\':
			escaped = true
		case quoteChar != 0 && c == quoteChar:
			quoteChar = 0
		case quoteChar != 0:
			sb.WriteRune(c)
		case c == ',':
			flush()
			sb.Reset()
			inItem = false
			quoted = false
		case quoted:
			// spasi setelah quote penutup
		case c == '\'' || c == '"':
			quoteChar = c
			inItem = true
			quoted = true
		case c == ' ' && !inItem:
		default:
			// elemen tanpa quote, mis. list osmid [123, 456]
			sb.WriteRune(c)
			inItem = true
		}
	}
	flush()
	return items
}
