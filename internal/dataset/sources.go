package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/database"
	"github.com/pageza/foodfight/backend/internal/model"
)

// FileSource reads a JSON dataset from the local filesystem
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]model.RawRecipe, int, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return DecodeJSON(f)
}

func (s *FileSource) String() string {
	return "file:" + s.Path
}

// ObjectGetter fetches one object from a bucket
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// S3Source reads a JSON dataset stored as an S3 object
type S3Source struct {
	Client ObjectGetter
	Bucket string
	Key    string
}

func (s *S3Source) Load(ctx context.Context) ([]model.RawRecipe, int, error) {
	body, err := s.Client.GetObject(ctx, s.Bucket, s.Key)
	if err != nil {
		return nil, 0, err
	}
	defer body.Close()
	return DecodeJSON(body)
}

func (s *S3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

// SQLSource reads the recipes table written by cmd/import. The table is
// read once, so Load closes the connection pool when it returns.
type SQLSource struct {
	DB   *gorm.DB
	Name string
}

func (s *SQLSource) Load(ctx context.Context) (raws []model.RawRecipe, skipped int, err error) {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close dataset database: %w", cerr)
		}
	}()

	if err = s.DB.WithContext(ctx).Order("row_id ASC").Find(&raws).Error; err != nil {
		return nil, 0, err
	}
	return raws, 0, nil
}

func (s *SQLSource) String() string {
	return s.Name
}

// Open picks the source for location: s3://bucket/key, a sqlite:// or
// postgres:// DSN, or a local file path.
func Open(ctx context.Context, location, awsRegion string) (Source, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, key, err := config.ParseS3URI(location)
		if err != nil {
			return nil, err
		}
		s3cfg, err := config.NewS3Config(ctx, awsRegion)
		if err != nil {
			return nil, err
		}
		return &S3Source{Client: s3cfg, Bucket: bucket, Key: key}, nil

	case database.IsDSN(location):
		db, err := database.Open(location)
		if err != nil {
			return nil, err
		}
		return &SQLSource{DB: db, Name: database.Redact(location)}, nil

	default:
		return &FileSource{Path: strings.TrimPrefix(location, "file://")}, nil
	}
}
