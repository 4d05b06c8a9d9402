package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// MaxKYCFileSize caps KYC document uploads at 5 MB.
const MaxKYCFileSize = 5 << 20

var allowedKYCExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
}

// ValidateKYCFile checks the extension whitelist and size cap for an uploaded
// KYC document.
func ValidateKYCFile(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedKYCExtensions[ext] {
		return fmt.Errorf("file type %s not allowed, must be jpeg, jpg, png or pdf", ext)
	}
	if file.Size > MaxKYCFileSize {
		return fmt.Errorf("file exceeds the 5 MB limit")
	}
	return nil
}

// KYCFileName builds the on-disk name for a KYC document:
// {userId}-{field}-{timestamp}.{ext}
func KYCFileName(userID uint, field string, originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s-%d%s", userID, field, now.Unix(), ext)
}
