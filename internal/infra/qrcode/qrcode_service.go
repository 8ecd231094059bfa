// Package qrcode renders and reads the share codes of animal listings.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"refuge/config"
	"refuge/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const animalHost = "animal"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	scheme               string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, scheme string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		scheme:               scheme,
	}
}

// NewQRCodeServiceFromConfig creates the service from the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.DeepLinkScheme)
}

// AnimalLink returns the deep link that opens the animal's detail page.
func (s *qrcodeService) AnimalLink(animalID string) string {
	return fmt.Sprintf("%s://%s/%s", s.scheme, animalHost, url.PathEscape(animalID))
}

// GenerateAnimalQR generates a PNG QR code encoding the animal's deep link
func (s *qrcodeService) GenerateAnimalQR(animalID string) ([]byte, error) {
	if strings.TrimSpace(animalID) == "" {
		return nil, errors.New("animal ID is required")
	}

	qrCode, err := qrcode.New(s.AnimalLink(animalID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseAnimalLink extracts the animal ID from a scanned deep link
func (s *qrcodeService) ParseAnimalLink(link string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse link")
	}

	if u.Scheme != s.scheme || u.Host != animalHost {
		return "", errors.Errorf("not an animal link: %s", link)
	}

	animalID := strings.Trim(u.Path, "/")
	if animalID == "" || strings.Contains(animalID, "/") {
		return "", errors.Errorf("invalid animal ID in link: %s", link)
	}

	return animalID, nil
}
