package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
)

// wrapStoreErr normalizes store failures: typed business errors pass
// through unchanged, a missing document becomes NotFound, anything else is
// Internal.
func wrapStoreErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NotFound("shift not found")
	}
	return apperrors.Internal(err, "%s", msg)
}
