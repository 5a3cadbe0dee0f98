package filestorage

import "mime/multipart"

// FileStorage defines the interface for stored uploads. The student photo
// pipeline persists only the public URL returned by SaveFile.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given name and returns the
	// publicly accessible URL.
	SaveFile(fileHeader *multipart.FileHeader, name string) (string, error)

	// DeleteFile removes a previously stored file by its public URL.
	// Deleting a missing file is not an error.
	DeleteFile(fileURL string) error
}
