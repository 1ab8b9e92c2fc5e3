// services/spaces.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	lru "github.com/hashicorp/golang-lru"

	botconfig "github.com/ellavondegurechaff/levibot/levibot/config"
)

// maxArtworkSize bounds what we buffer for one image.
const maxArtworkSize = 8 << 20

var ErrNoArtwork = errors.New("card has no artwork")

// Artwork is a fetched card image ready to be attached to a message.
type Artwork struct {
	Data        []byte
	ContentType string
	Name        string
}

// ArtworkSource resolves a card image reference into bytes.
type ArtworkSource interface {
	FetchArtwork(ctx context.Context, ref string) (*Artwork, error)
}

type SpacesConfig struct {
	Key       string
	Secret    string
	Region    string
	Bucket    string
	CardRoot  string
	CacheSize int
}

// SpacesService stores card artwork in a DigitalOcean Spaces bucket. Card
// references are either object keys below CardRoot or absolute URLs.
type SpacesService struct {
	client   *s3.Client
	http     *http.Client
	bucket   string
	region   string
	cardRoot string
	cache    *lru.Cache
}

var _ ArtworkSource = (*SpacesService)(nil)

func NewSpacesService(ctx context.Context, c SpacesConfig) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.Key, c.Secret, "")),
		config.WithRegion(c.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	size := c.CacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create artwork cache: %w", err)
	}

	return &SpacesService{
		client:   s3.NewFromConfig(cfg),
		http:     &http.Client{Timeout: botconfig.ArtworkFetchTimeout},
		bucket:   c.Bucket,
		region:   c.Region,
		cardRoot: strings.Trim(c.CardRoot, "/"),
		cache:    cache,
	}, nil
}

// ObjectKey maps a card reference to its key inside the bucket.
func (s *SpacesService) ObjectKey(ref string) string {
	ref = strings.TrimPrefix(ref, "/")
	if s.cardRoot == "" || strings.HasPrefix(ref, s.cardRoot+"/") {
		return ref
	}
	return s.cardRoot + "/" + ref
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (s *SpacesService) FetchArtwork(ctx context.Context, ref string) (*Artwork, error) {
	if ref == "" {
		return nil, ErrNoArtwork
	}
	if cached, ok := s.cache.Get(ref); ok {
		return cached.(*Artwork), nil
	}

	var (
		art *Artwork
		err error
	)
	if isURL(ref) {
		art, err = s.fetchURL(ctx, ref)
	} else {
		art, err = s.fetchObject(ctx, s.ObjectKey(ref))
	}
	if err != nil {
		return nil, err
	}

	s.cache.Add(ref, art)
	return art, nil
}

func (s *SpacesService) fetchObject(ctx context.Context, key string) (*Artwork, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxArtworkSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return &Artwork{
		Data:        data,
		ContentType: aws.ToString(out.ContentType),
		Name:        path.Base(key),
	}, nil
}

func (s *SpacesService) fetchURL(ctx context.Context, url string) (*Artwork, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching image: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtworkSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	name := path.Base(req.URL.Path)
	if name == "" || name == "/" || name == "." {
		name = "card.png"
	}
	return &Artwork{Data: data, ContentType: resp.Header.Get("Content-Type"), Name: name}, nil
}

// UploadArtwork stores an image under ref and returns the key it was written
// to.
func (s *SpacesService) UploadArtwork(ctx context.Context, ref string, data []byte, contentType string) (string, error) {
	key := s.ObjectKey(ref)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.cache.Remove(ref)
	slog.Info("Uploaded card artwork",
		slog.String("type", "sys"),
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return key, nil
}

func (s *SpacesService) DeleteArtwork(ctx context.Context, ref string) error {
	key := s.ObjectKey(ref)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	s.cache.Remove(ref)
	return nil
}

// PublicURL is the CDN-less URL of an object key.
func (s *SpacesService) PublicURL(ref string) string {
	if isURL(ref) {
		return ref
	}
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, s.ObjectKey(ref))
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}
