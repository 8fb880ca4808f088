package ports

import "github.com/SuwenJunliu/LASIF/internal/domain"

// IterationCodec serializes iterations to and from their on-disk form.
type IterationCodec interface {
	Encode(it domain.Iteration) ([]byte, error)
	Decode(b []byte) (domain.Iteration, error)
}
