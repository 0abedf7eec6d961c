package normalize

// foldTable maps each Polish accented letter to its closest ASCII equivalent.
var foldTable = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N',
	'Ó': 'O', 'Ś': 'S', 'Ź': 'Z', 'Ż': 'Z',
}

// Fold replaces Polish diacritics character by character. Runes outside the
// table pass through unchanged.
func Fold(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if folded, ok := foldTable[r]; ok {
			r = folded
		}
		out = append(out, r)
	}
	return string(out)
}
