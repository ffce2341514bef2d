package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"slotly-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateTrialCustomerID produces an identifier for doctors signing up
// without a paid subscription, e.g. "trial_9f86d081884ca7fb".
func GenerateTrialCustomerID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return constvars.TrialCustomerIDPrefix + hex.EncodeToString(buf), nil
}

func GenerateUniqueFilename(originalName string) string {
	extension := filepath.Ext(originalName)
	return fmt.Sprintf("%s_%d%s", uuid.New().String(), time.Now().UnixNano(), extension)
}
