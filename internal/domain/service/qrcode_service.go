package service

// QRCodeService defines the interface for animal share codes
type QRCodeService interface {
	// GenerateAnimalQR generates a PNG QR code linking to the animal
	GenerateAnimalQR(animalID string) ([]byte, error)

	// ParseAnimalLink extracts the animal identifier from a scanned deep link
	ParseAnimalLink(link string) (string, error)
}
