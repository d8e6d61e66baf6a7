package output

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cipher-keeper/models"
)

// customFieldPrefix addresses a custom field by name, e.g. "field:PIN".
const customFieldPrefix = "field:"

// field is one labeled value of a view, in display order.
type field struct {
	key    string
	label  string
	value  string
	secret bool
}

// FieldValue returns the decrypted value of the named field. Names are
// case-insensitive. Custom fields are addressed as "field:<name>".
func FieldValue(view *models.CipherView, name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	for _, f := range fieldsOf(view) {
		if f.key != key {
			continue
		}
		if f.value == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyField, name)
		}
		return f.value, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// FieldNames lists the names FieldValue accepts for view that hold a value.
func FieldNames(view *models.CipherView) []string {
	var names []string
	for _, f := range fieldsOf(view) {
		if f.value != "" {
			names = append(names, f.key)
		}
	}
	return names
}

// DefaultCopyField is the field most worth copying for a record type.
func DefaultCopyField(view *models.CipherView) string {
	switch {
	case view.Login != nil:
		return "password"
	case view.Card != nil:
		return "number"
	case view.Identity != nil:
		return "email"
	default:
		return "notes"
	}
}

func fieldsOf(view *models.CipherView) []field {
	fields := []field{
		{key: "name", label: "Name", value: view.Name},
	}

	switch {
	case view.Login != nil:
		l := view.Login
		fields = append(fields,
			field{key: "username", label: "Username", value: l.Username},
			field{key: "password", label: "Password", value: l.Password, secret: true},
			field{key: "uri", label: "URI", value: l.URI},
			field{key: "totp", label: "TOTP", value: l.Totp, secret: true},
		)
	case view.Card != nil:
		c := view.Card
		fields = append(fields,
			field{key: "cardholder", label: "Cardholder", value: c.CardholderName},
			field{key: "brand", label: "Brand", value: c.Brand},
			field{key: "number", label: "Number", value: c.Number, secret: true},
			field{key: "expiry", label: "Expires", value: expiry(c.ExpMonth, c.ExpYear)},
			field{key: "code", label: "Code", value: c.Code, secret: true},
		)
	case view.Identity != nil:
		i := view.Identity
		fields = append(fields,
			field{key: "title", label: "Title", value: i.Title},
			field{key: "first-name", label: "First name", value: i.FirstName},
			field{key: "middle-name", label: "Middle name", value: i.MiddleName},
			field{key: "last-name", label: "Last name", value: i.LastName},
			field{key: "username", label: "Username", value: i.Username},
			field{key: "company", label: "Company", value: i.Company},
			field{key: "email", label: "Email", value: i.Email},
			field{key: "phone", label: "Phone", value: i.Phone},
			field{key: "address", label: "Address", value: joinNonEmpty(", ", i.Address1, i.Address2, i.Address3)},
			field{key: "city", label: "City", value: i.City},
			field{key: "state", label: "State", value: i.State},
			field{key: "postal-code", label: "Postal code", value: i.PostalCode},
			field{key: "country", label: "Country", value: i.Country},
			field{key: "ssn", label: "SSN", value: i.SSN, secret: true},
			field{key: "passport", label: "Passport", value: i.PassportNumber, secret: true},
			field{key: "license", label: "License", value: i.LicenseNumber, secret: true},
		)
	}

	fields = append(fields, field{key: "notes", label: "Notes", value: view.Notes})

	for _, f := range view.Fields {
		fields = append(fields, field{
			key:    customFieldPrefix + strings.ToLower(f.Name),
			label:  f.Name,
			value:  f.Value,
			secret: f.Type == models.FieldTypeHidden,
		})
	}

	return fields
}

func expiry(month, year string) string {
	switch {
	case month == "" && year == "":
		return ""
	case month == "":
		return year
	case year == "":
		return month
	default:
		return month + "/" + year
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
