package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	crestDir      = "brasoes"
	crestMaxSide  = 512
	crestQuality  = 85
	crestFileMode = 0o755
)

// CrestFileName derives the media-relative crest path:
//
//	brasoes/brasao_instituicao_guaira_sp.webp
//	brasoes/brasao_municipio_guaira_sp.webp
//
// When the municipality or state is not set yet, the institution id keeps the
// name unique instead of raising.
func CrestFileName(kind, municipalityName, uf string, institutionID uuid.UUID) string {
	citySlug := ""
	if municipalityName != "" {
		citySlug = Slugify(municipalityName, 60)
	}
	ufSlug := ""
	if uf != "" {
		ufSlug = Slugify(uf, 10)
	}

	suffix := citySlug + "_" + ufSlug
	if citySlug == "" || ufSlug == "" {
		suffix = institutionID.String()
	}
	return filepath.Join(crestDir, fmt.Sprintf("brasao_%s_%s.webp", Slugify(kind, 30), suffix))
}

// SaveCrestWebP normalizes an uploaded crest (decode png/jpeg, fit into
// 512x512, encode webp) and writes it under mediaRoot at relPath.
// Returns the stored relative path.
func SaveCrestWebP(mediaRoot, relPath string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, crestMaxSide, crestMaxSide, imaging.Lanczos)

	dst := filepath.Join(mediaRoot, relPath)
	if err := os.MkdirAll(filepath.Dir(dst), crestFileMode); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create crest file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: crestQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}
	return relPath, nil
}
