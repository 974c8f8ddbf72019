package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Nickname policy: 2-20 characters, Hangul syllables, ASCII letters, digits
// and underscore only, and not composed of digits alone.
const (
	NicknameMinLen = 2
	NicknameMaxLen = 20
)

var (
	nicknameDisallowedRegex = regexp.MustCompile(`[^가-힣a-zA-Z0-9_]`)
	allDigitsRegex          = regexp.MustCompile(`^\d+$`)
)

// Nickname violation messages.
const (
	NicknameErrEmpty      = "닉네임을 입력해주세요"
	NicknameErrTooShort   = "닉네임은 2자 이상이어야 합니다"
	NicknameErrTooLong    = "닉네임은 20자 이내여야 합니다"
	NicknameErrBadChars   = "닉네임은 한글, 영문, 숫자, 언더스코어만 사용할 수 있습니다"
	NicknameErrDigitsOnly = "닉네임은 숫자로만 구성될 수 없습니다"
)

// NicknameCheck is the result of ValidateNickname. Errors accumulates every
// violated constraint in policy order; it does not stop at the first.
type NicknameCheck struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// ValidateNickname checks the nickname policy. A blank nickname reports only
// the emptiness error; the remaining constraints are checked together and
// can each contribute an entry.
func ValidateNickname(nickname string) NicknameCheck {
	var errs []string

	if strings.TrimSpace(nickname) == "" {
		errs = append(errs, NicknameErrEmpty)
	} else {
		if n := utf8.RuneCountInString(nickname); n < NicknameMinLen {
			errs = append(errs, NicknameErrTooShort)
		} else if n > NicknameMaxLen {
			errs = append(errs, NicknameErrTooLong)
		}
		if nicknameDisallowedRegex.MatchString(nickname) {
			errs = append(errs, NicknameErrBadChars)
		}
		if allDigitsRegex.MatchString(nickname) {
			errs = append(errs, NicknameErrDigitsOnly)
		}
	}

	return NicknameCheck{Valid: len(errs) == 0, Errors: errs}
}
