package services

import (
	"net/url"
	"path/filepath"

	"github.com/localnerve/staffdir/internal/dataset"
)

// AvatarURL resolves an employee's avatar: the normalized registered photo
// path when the image map has one, otherwise a deterministic generated
// placeholder seeded with the employee code.
func AvatarURL(store *dataset.Store, fallbackBase, employeeCode string) string {
	if path, ok := store.ImagePath(employeeCode); ok && path != "" {
		return filepath.Clean(path)
	}
	return fallbackBase + "?seed=" + url.QueryEscape(employeeCode)
}
