package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
)

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

// Init decodes and installs the v2.local symmetric key. Must be called once
// at startup before tokens are issued or validated.
func Init(secretBase64 string) error {
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decodedKey, err = base64.StdEncoding.DecodeString(secretBase64)
		if err != nil {
			return fmt.Errorf("failed to decode PASETO secret: %w", err)
		}
	}

	if len(decodedKey) != 32 {
		return fmt.Errorf("PASETO secret must be exactly 32 bytes after base64 decoding, got %d bytes", len(decodedKey))
	}

	symmetricKey = decodedKey
	return nil
}

func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var claims models.Claims

	userIDStr := token.Get("user_id")
	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}
	claims.UserID = objectID
	claims.Email = token.Get("email")
	claims.Role = token.Get("role")

	return &claims, nil
}
