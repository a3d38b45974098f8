package resume

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmpty    = errors.New("empty file")
	ErrNotPDF   = errors.New("only PDF files are accepted")
	ErrTooLarge = errors.New("file too large")
)

// Upload хранит метаданные загруженного CV.
type Upload struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Pages       int       `json:"pages"`
	StorageURI  string    `json:"storageUri,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// StoredName is the blob name an upload is saved under.
func (u Upload) StoredName() string {
	return u.UploadedAt.UTC().Format("20060102") + "/" + u.ID.String() + ".pdf"
}
