package content

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	ErrInvalidConfig = errors.New("content: invalid configuration")
	ErrNotFound      = errors.New("content: document not found")
	ErrAccessDenied  = errors.New("content: access denied")
	ErrListFailed    = errors.New("content: failed to list documents")
	ErrReadFailed    = errors.New("content: failed to read document")
	ErrInvalidIndex  = errors.New("content: invalid index")
)

// wrapS3Error maps S3 API errors onto the package sentinels. The original
// error is formatted with %v so callers match on sentinels only.
func wrapS3Error(err, fallback error) error {
	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
