package domain

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Attachment describes a file attached to a cipher. Only FileName is
// encrypted.
type Attachment struct {
	ID       string
	URL      string
	FileName *EncString
	Size     string
	SizeName string
}

func NewAttachment(obj models.AttachmentData, alreadyEncrypted bool) *Attachment {
	return &Attachment{
		ID:       obj.ID,
		URL:      obj.URL,
		FileName: newEncString(obj.FileName, alreadyEncrypted),
		Size:     obj.Size,
		SizeName: obj.SizeName,
	}
}

// Decrypt returns the plain attachment descriptor. A missing SizeName is
// derived from Size.
func (a *Attachment) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (models.AttachmentView, error) {
	view := models.AttachmentView{
		ID:       a.ID,
		URL:      a.URL,
		Size:     a.Size,
		SizeName: a.SizeName,
	}

	if err := decryptFields(ctx, crypto, orgID, encField{"file name", a.FileName, &view.FileName}); err != nil {
		return models.AttachmentView{}, err
	}

	if view.SizeName == "" {
		view.SizeName = sizeName(a.Size)
	}

	return view, nil
}

// sizeName renders a byte count the way file managers do: "512 Bytes",
// "1.5 KB", "12.34 MB". Unparsable sizes render as "".
func sizeName(size string) string {
	n, err := strconv.ParseFloat(size, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}

	units := []string{"Bytes", "KB", "MB", "GB", "TB"}
	i := 0
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}

	s := strconv.FormatFloat(n, 'f', 2, 64)
	// 1.50 -> 1.5, 2.00 -> 2
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}

	return fmt.Sprintf("%s %s", s, units[i])
}
