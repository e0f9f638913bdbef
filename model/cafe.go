package model

import (
	"encoding/base64"
	"strings"
)

// MaxLogoSize is the largest logo the console will submit. The API has the final say.
const MaxLogoSize = 2 << 20

type Cafe struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Logo          *Logo  `json:"logo,omitempty"`
	EmployeeCount int    `json:"employeeCount,omitempty"`
}

// Logo is an image carried inline as base64.
type Logo struct {
	Bytes       string `json:"bytes"`
	ContentType string `json:"contentType"`
}

func NewLogo(data []byte, contentType string) *Logo {
	return &Logo{
		Bytes:       base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
}

// Empty reports whether the logo carries no image at all.
func (l *Logo) Empty() bool {
	return l == nil || (l.Bytes == "" && l.ContentType == "")
}

// Size returns the decoded length of the image in bytes.
func (l *Logo) Size() int {
	if l == nil {
		return 0
	}
	b64 := strings.TrimRight(l.Bytes, "=")
	return base64.RawStdEncoding.DecodedLen(len(b64))
}

// DataURL renders the logo the way an <img src> expects it.
func (l *Logo) DataURL() string {
	if l.Empty() {
		return ""
	}
	return "data:" + l.ContentType + ";base64," + l.Bytes
}
