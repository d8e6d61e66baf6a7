package models

// CipherView is the decrypted, display-ready projection of a vault record.
// It is produced by decrypting a domain cipher and is never written back.
//
// Exactly one of Login, Card, Identity and SecureNote is set for a known
// Type; none is set for an unknown one. SubTitle is nil when no summary
// applies (secure notes, unknown types).
type CipherView struct {
	ID             *string `json:"id"`
	OrganizationID *string `json:"organizationId"`
	FolderID       *string `json:"folderId"`

	Name  string `json:"name"`
	Notes string `json:"notes"`

	Type                CipherType `json:"type"`
	Favorite            bool       `json:"favorite"`
	Edit                bool       `json:"edit"`
	OrganizationUseTotp bool       `json:"organizationUseTotp"`

	LocalData map[string]any `json:"localData"`

	Login      *LoginView      `json:"login"`
	Card       *CardView       `json:"card"`
	Identity   *IdentityView   `json:"identity"`
	SecureNote *SecureNoteView `json:"secureNote"`

	SubTitle *string `json:"subTitle"`

	// Attachments and Fields are nil when the record carries none, and a
	// non-nil empty slice when it carries an explicitly empty list.
	Attachments []AttachmentView `json:"attachments"`
	Fields      []FieldView      `json:"fields"`

	CollectionIDs []string `json:"collectionIds"`
}

// LoginView is the decrypted login payload.
type LoginView struct {
	URI      string `json:"uri"`
	Username string `json:"username"`
	Password string `json:"password"`
	Totp     string `json:"totp"`

	// Domain is the registrable domain of URI, resolved for display only.
	Domain string `json:"domain,omitempty"`
}

// CardView is the decrypted card payload.
type CardView struct {
	CardholderName string `json:"cardholderName"`
	Brand          string `json:"brand"`
	Number         string `json:"number"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	Code           string `json:"code"`
}

// IdentityView is the decrypted identity payload.
type IdentityView struct {
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	Address1       string `json:"address1"`
	Address2       string `json:"address2"`
	Address3       string `json:"address3"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	Company        string `json:"company"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SSN            string `json:"ssn"`
	Username       string `json:"username"`
	PassportNumber string `json:"passportNumber"`
	LicenseNumber  string `json:"licenseNumber"`
}

// SecureNoteView is the secure note payload. It carries no secrets.
type SecureNoteView struct {
	Type SecureNoteType `json:"type"`
}

// AttachmentView is a decrypted attachment descriptor.
type AttachmentView struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Size     string `json:"size"`
	SizeName string `json:"sizeName"`
}

// FieldView is a decrypted custom field.
type FieldView struct {
	Type  FieldType `json:"type"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}
