package httpsource

import (
	"context"
	"fmt"
	"time"

	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/httpclient"
)

// Source trae animals.json por HTTP.
type Source struct {
	client *httpclient.Client
	url    string
}

func New(url string, timeout time.Duration) *Source {
	return NewWithClient(httpclient.New(timeout), url)
}

func NewWithClient(c *httpclient.Client, url string) *Source {
	return &Source{client: c, url: url}
}

func (s *Source) Load(ctx context.Context) ([]animals.RawAnimal, error) {
	b, err := s.client.Get(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", animals.ErrLoadFailed, s.url, err)
	}
	return animals.ParseRaw(b)
}
