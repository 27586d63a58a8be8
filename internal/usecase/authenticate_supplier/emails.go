package authenticate_supplier

import "strings"

// ccSeparators разделители, которыми ревизии документа перечисляли адреса
var ccSeparators = []string{";", ","}

// ParseCCEmails разбирает строку дополнительных адресов из Identity Store.
// Хранилище отдаёт их одной строкой с разделителями; пустые и пробельные
// элементы отбрасываются. Для пустой строки возвращается пустой список.
func ParseCCEmails(raw string) []string {
	normalized := raw
	for _, sep := range ccSeparators[1:] {
		normalized = strings.ReplaceAll(normalized, sep, ccSeparators[0])
	}

	parts := strings.Split(normalized, ccSeparators[0])
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			emails = append(emails, trimmed)
		}
	}

	return emails
}
