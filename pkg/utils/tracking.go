package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const trackingIDDigits = 8

// GenerateTrackingID returns a public tracking identifier of the form
// TRK followed by 8 random digits. Digits come from crypto/rand so two
// shipments booked in the same instant never share a window-derived ID;
// the storage layer still retries on the unlikely unique-index collision.
func GenerateTrackingID() (string, error) {
	var sb strings.Builder
	sb.WriteString("TRK")

	for i := 0; i < trackingIDDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate tracking id: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}

// GenerateTransactionID returns a payment transaction identifier of the
// form TXN followed by 8 hex characters.
func GenerateTransactionID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}

	return "TXN" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
