// Package storage persists uploaded photos and hands back a retrievable
// reference URL. Callers that cannot afford to fail on a bad upload fall
// back to Placeholder instead of aborting.
package storage

import "net/url"

type ImageStore interface {
	// Save writes the image bytes under the given folder and returns a
	// URL the stored image can be fetched from.
	Save(filename string, data []byte, folder string) (string, error)
}

// Placeholder returns a stand-in reference used when the image store is
// unavailable. The request continues with this URL rather than failing.
func Placeholder(name string) string {
	if name == "" {
		name = "image"
	}
	return "/placeholder.svg?height=200&width=200&text=" + url.QueryEscape(name)
}
