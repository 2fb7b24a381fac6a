package bot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minTextLen = 10
	maxTextLen = 2000
)

// forbiddenRunes are invisible or direction-override code points used for
// spoofing: RTL override, zero-width space/joiner/non-joiner, BOM-as-text.
var forbiddenRunes = []rune{'\u202E', '\u200B', '\u200C', '\u200D', '\uFEFF'}

var (
	errTextRequired   = errors.New("Текст повинен бути в текстовому форматі.")
	errTextTooShort   = fmt.Errorf("Опис занадто короткий. Напиши хоча б %d символів.", minTextLen)
	errForbiddenRunes = errors.New("Виявлено заборонені невидимі символи. Напиши текст без фокусів.")
)

// ValidateText checks free-text input for the name and description steps.
// Rules run in order; the first failure wins and its message is shown to the
// operator verbatim.
func ValidateText(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errTextRequired
	}

	text := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(text)

	if length < minTextLen {
		return errTextTooShort
	}
	if length > maxTextLen {
		return fmt.Errorf("Опис занадто довгий (%d символів). Скороти до %d.", length, maxTextLen)
	}

	if strings.ContainsAny(text, string(forbiddenRunes)) {
		return errForbiddenRunes
	}
	return nil
}
