package domain

import "strings"

// CardSubTitle summarizes a card as "<brand>, *<last 4 digits>".
// The masked part is only added for numbers of at least four runes and
// the separator only when brand is non-empty.
func CardSubTitle(brand, number string) string {
	subTitle := brand
	if digits := []rune(number); len(digits) >= 4 {
		if subTitle != "" {
			subTitle += ", "
		}
		subTitle += "*" + string(digits[len(digits)-4:])
	}
	return subTitle
}

// IdentitySubTitle joins first and last name with a single space, skipping
// whichever is empty.
func IdentitySubTitle(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	if firstName != "" {
		parts = append(parts, firstName)
	}
	if lastName != "" {
		parts = append(parts, lastName)
	}
	return strings.Join(parts, " ")
}
