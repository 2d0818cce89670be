package port

import (
	"context"
	"io"
)

// ObjectStorage abstracts cloud object storage operations used to fetch
// remote input files for ingestion.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string, w io.WriterAt) (int64, error)
}
