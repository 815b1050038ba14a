package content

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"lingo/config"
	"lingo/internal/domain/service"
	"lingo/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through content.bucketUrl.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params holds dependencies for the catalog provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLessonCatalog loads the dataset once at startup.
func NewLessonCatalog(params Params) (service.LessonCatalog, error) {
	catalog, err := Load(params.Ctx, params.Config.Content)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Lesson catalog loaded",
		slog.Int("total", catalog.TotalCount()),
		slog.String("bucket_url", params.Config.Content.BucketURL),
		slog.String("path", params.Config.Content.Path),
	)

	return catalog, nil
}

// Load reads the dataset from content.bucketUrl/content.key, or from content.path
// through a file bucket rooted at the file's directory.
func Load(ctx context.Context, cfg config.ContentConfig) (*Catalog, error) {
	data, err := ReadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// ReadDataset returns the raw dataset bytes.
func ReadDataset(ctx context.Context, cfg config.ContentConfig) ([]byte, error) {
	bucket, key, err := openBucket(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(err, "lesson dataset %q not found", key)
		}

		return nil, errors.Wrapf(err, "failed to read lesson dataset %q", key)
	}

	return data, nil
}

func openBucket(ctx context.Context, cfg config.ContentConfig) (*blob.Bucket, string, error) {
	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, cfg.Key, nil
	}

	if cfg.Path == "" {
		return nil, "", errors.New("no lesson dataset configured")
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to resolve dataset path")
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, "", errors.Wrapf(err, "lesson dataset %s", abs)
	}

	bucket, err := fileblob.OpenBucket(filepath.Dir(abs), nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open directory %s", filepath.Dir(abs))
	}

	return bucket, filepath.Base(abs), nil
}
