package models

import "strconv"

// CipherType defines the semantic type of a vault record.
// The value determines which payload of CipherData is meaningful.
type CipherType int

const (
	// CipherTypeLogin represents authentication credentials
	// such as username, password, URI and optional TOTP secret.
	CipherTypeLogin CipherType = 1

	// CipherTypeSecureNote represents free-form secret text.
	// The text itself lives in the record notes.
	CipherTypeSecureNote CipherType = 2

	// CipherTypeCard represents payment card information.
	CipherTypeCard CipherType = 3

	// CipherTypeIdentity represents personal identity details
	// (name, address, documents).
	CipherTypeIdentity CipherType = 4
)

// IsKnown reports whether t is one of the types this build can decode.
// Unknown values are still legal and are carried through untouched.
func (t CipherType) IsKnown() bool {
	switch t {
	case CipherTypeLogin, CipherTypeSecureNote, CipherTypeCard, CipherTypeIdentity:
		return true
	default:
		return false
	}
}

func (t CipherType) String() string {
	switch t {
	case CipherTypeLogin:
		return "login"
	case CipherTypeSecureNote:
		return "secure_note"
	case CipherTypeCard:
		return "card"
	case CipherTypeIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// ParseCipherType accepts either a type name as returned by String or its
// numeric value. Unknown numbers are accepted, unknown names are not.
func ParseCipherType(s string) (CipherType, bool) {
	for _, t := range []CipherType{CipherTypeLogin, CipherTypeSecureNote, CipherTypeCard, CipherTypeIdentity} {
		if s == t.String() {
			return t, true
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return CipherType(n), true
}

// FieldType defines how a custom field value is presented.
type FieldType int

const (
	FieldTypeText    FieldType = 0
	FieldTypeHidden  FieldType = 1
	FieldTypeBoolean FieldType = 2
)

// SecureNoteType is the sub-type of a secure note. Only the generic
// variant exists today.
type SecureNoteType int

const SecureNoteTypeGeneric SecureNoteType = 0
