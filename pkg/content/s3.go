package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"
)

// IndexFile is the optional object listing the documents to read.
const IndexFile = "index.yaml"

// S3Config configures the bucket source.
type S3Config struct {
	Bucket    string `env:"BLOG_S3_BUCKET"`
	Prefix    string `env:"BLOG_S3_PREFIX" envDefault:"blog/"`
	Region    string `env:"BLOG_S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"BLOG_S3_ENDPOINT"`
	AccessKey string `env:"BLOG_S3_ACCESS_KEY"`
	SecretKey string `env:"BLOG_S3_SECRET_KEY"`
	// PathStyle is required by MinIO and most self-hosted services.
	PathStyle bool `env:"BLOG_S3_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

func (c S3Config) validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	case c.AccessKey == "" || c.SecretKey == "":
		return fmt.Errorf("%w: access key and secret key are required", ErrInvalidConfig)
	}
	return nil
}

// S3API is the subset of the S3 client used by the source.
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads documents from a bucket prefix.
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 builds an S3 client from cfg.
func NewS3(cfg S3Config) (*S3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return NewS3WithClient(s3.New(s3.Options{}, opts...), cfg.Bucket, cfg.Prefix), nil
}

// NewS3WithClient reads bucket/prefix through client.
func NewS3WithClient(client S3API, bucket, prefix string) *S3 {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

type index struct {
	Posts []string `yaml:"posts"`
}

// Files returns the documents named by the index, or every .md object under
// the prefix when there is no index.
func (s *S3) Files(ctx context.Context) ([]File, error) {
	keys, err := s.indexKeys(ctx)
	if errors.Is(err, ErrNotFound) {
		keys, err = s.listKeys(ctx)
	}
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(keys))
	for _, key := range keys {
		f, err := s.get(ctx, key)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	sortFiles(files)
	return files, nil
}

func (s *S3) indexKeys(ctx context.Context) ([]string, error) {
	f, err := s.get(ctx, s.prefix+IndexFile)
	if err != nil {
		return nil, err
	}

	var idx index
	if err := yaml.Unmarshal(f.Data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIndex, err)
	}

	keys := make([]string, 0, len(idx.Posts))
	for _, name := range idx.Posts {
		name = path.Base(strings.TrimSpace(name))
		if !strings.HasSuffix(name, Extension) {
			return nil, fmt.Errorf("%w: %q is not a %s document", ErrInvalidIndex, name, Extension)
		}
		keys = append(keys, s.prefix+name)
	}
	return keys, nil
}

func (s *S3) listKeys(ctx context.Context) ([]string, error) {
	var keys []string
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			// Only direct children of the prefix.
			rest := strings.TrimPrefix(key, s.prefix)
			if strings.Contains(rest, "/") || !strings.HasSuffix(rest, Extension) {
				continue
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *S3) get(ctx context.Context, key string) (File, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return File{}, wrapS3Error(err, ErrReadFailed)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %v", ErrReadFailed, key, err)
	}

	return File{
		Name:    path.Base(key),
		Data:    data,
		ModTime: aws.ToTime(out.LastModified),
	}, nil
}
