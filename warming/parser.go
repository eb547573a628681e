package warming

import "strings"

// Delimiter separa o token principal do secundário em cada linha.
const Delimiter = "|"

// Line is one accepted line of a bulk import text. Primary is the phone
// number or group name; Secondary is the description or invite URL.
type Line struct {
	Primary   string
	Secondary string
}

// ParseLines splits text into lines and each line on Delimiter, trimming both
// parts. Parts past the second are ignored. Lines whose primary part is empty
// are dropped without being reported.
func ParseLines(text string) []Line {
	var out []Line
	for _, raw := range strings.Split(text, "\n") {
		parts := strings.Split(raw, Delimiter)
		primary := strings.TrimSpace(parts[0])
		if primary == "" {
			continue
		}
		l := Line{Primary: primary}
		if len(parts) > 1 {
			l.Secondary = strings.TrimSpace(parts[1])
		}
		out = append(out, l)
	}
	return out
}
