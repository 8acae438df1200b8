package storage

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the folder an uploaded file belongs to.
type Kind string

const (
	KindProfilePhoto Kind = "profilephotos"
	KindResume       Kind = "resumes"
	KindCompanyImage Kind = "companyimages"
)

// DefaultCompanyImage is used when a company image name sanitizes to nothing.
const DefaultCompanyImage = "company_image.jpg"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// IsAbsoluteURL reports whether p already points at an http(s) resource.
func IsAbsoluteURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// NormalizeKey rewrites a stored file reference into its logical key under the
// folder for kind. Empty values and absolute URLs are returned unchanged.
// NormalizeKey(k, NormalizeKey(k, p)) == NormalizeKey(k, p).
func NormalizeKey(kind Kind, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || IsAbsoluteURL(p) {
		return p
	}

	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}

	if kind == KindCompanyImage {
		base = unsafeChars.ReplaceAllString(base, "")
		if base == "" || base == "." || base == ".." {
			base = DefaultCompanyImage
		}
	}
	if base == "" {
		return ""
	}
	return string(kind) + "/" + base
}

// NewKey builds a unique logical key for a freshly uploaded file.
func NewKey(kind Kind, filename string) string {
	name := unsafeChars.ReplaceAllString(path.Base(strings.ReplaceAll(filename, "\\", "/")), "")
	if name == "" || name == "." || name == ".." {
		name = "upload"
		if kind == KindCompanyImage {
			name = DefaultCompanyImage
		}
	}
	return NormalizeKey(kind, uuid.NewString()[:8]+"_"+name)
}
