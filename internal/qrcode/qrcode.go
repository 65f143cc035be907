package qrcode

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Dir is the folder under the static root that holds the images.
const Dir = "qr_codes"

var ErrWrite = errors.New("qr code write failed")

// Issuer renders status-check QR codes to <staticDir>/qr_codes/<id>.png.
type Issuer struct {
	baseURL   string
	staticDir string
	size      int
}

func NewIssuer(baseURL, staticDir string, size int) *Issuer {
	return &Issuer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		staticDir: staticDir,
		size:      size,
	}
}

// URL is the status page a scanned code points to.
func (i *Issuer) URL(violationID uint) string {
	return i.baseURL + "/status/" + strconv.FormatUint(uint64(violationID), 10)
}

// RelativePath is what gets stored on the violation row.
func RelativePath(violationID uint) string {
	return path.Join(Dir, strconv.FormatUint(uint64(violationID), 10)+".png")
}

// Render encodes the status URL without touching the disk.
func (i *Issuer) Render(violationID uint) (barcode.Barcode, error) {
	code, err := qr.Encode(i.URL(violationID), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr for violation %d: %w", violationID, err)
	}
	scaled, err := barcode.Scale(code, i.size, i.size)
	if err != nil {
		return nil, fmt.Errorf("scale qr for violation %d: %w", violationID, err)
	}
	return scaled, nil
}

// Issue writes the image for violationID and returns its relative path.
// An existing file for the same id is overwritten.
func (i *Issuer) Issue(violationID uint) (string, error) {
	img, err := i.Render(violationID)
	if err != nil {
		return "", err
	}

	rel := RelativePath(violationID)
	full := i.AbsPath(rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return rel, nil
}

// Remove deletes a previously issued image. A missing file is not an error.
func (i *Issuer) Remove(rel string) error {
	err := os.Remove(i.AbsPath(rel))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// AbsPath maps a stored relative path onto the static directory.
func (i *Issuer) AbsPath(rel string) string {
	return filepath.Join(i.staticDir, filepath.FromSlash(rel))
}
