package tools

import "strings"

// BrazilPrefix é o DDI exigido nos números cadastrados.
const BrazilPrefix = "+55"

// WaLinkBase é o template do link direto para conversa.
const WaLinkBase = "https://wa.me/"

// GroupInviteMarker identifica um link de convite de grupo.
const GroupInviteMarker = "chat.whatsapp.com"

// DigitsOnly mantém apenas os dígitos ASCII 0-9 de um telefone.
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// WhatsAppLink deriva o link wa.me de um número: remove tudo que não é dígito
// (inclusive o '+') e prefixa o template.
func WhatsAppLink(number string) string {
	return WaLinkBase + DigitsOnly(number)
}

// FormatBrazilNumber normaliza o número digitado no cadastro:
// - se já começa com +55, mantém como veio (trim)
// - senão, prefixa +55 aos dígitos
func FormatBrazilNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, BrazilPrefix) {
		return raw
	}
	return BrazilPrefix + DigitsOnly(raw)
}

func HasBrazilPrefix(number string) bool {
	return strings.HasPrefix(number, BrazilPrefix)
}

func IsGroupInviteURL(url string) bool {
	return strings.Contains(url, GroupInviteMarker)
}
