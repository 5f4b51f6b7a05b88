// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions are options for connecting to a MinIO or other S3 compatible
// object store.
type MinioOptions struct {
	// Endpoint is the host and optional port of the object store.
	Endpoint string

	// AccessKey and SecretKey are static credentials. Anonymous access is
	// used if either is empty.
	AccessKey string
	SecretKey string

	// Insecure disables TLS.
	Insecure bool

	// Region is an optional region.
	Region string
}

// Minio reads data files from a bucket in a MinIO or other S3 compatible
// object store.
type Minio struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinio returns a Minio that reads objects from bucket. prefix is
// prepended to all data file names (e.g. "watchword/").
func NewMinio(client *minio.Client, bucket, prefix string) *Minio {
	return &Minio{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// DialMinio creates a MinIO client from opts and returns a Minio for the
// given bucket and prefix.
func DialMinio(opts *MinioOptions, bucket, prefix string) (*Minio, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: !opts.Insecure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client for %q: %w", opts.Endpoint, err)
	}
	return NewMinio(client, bucket, prefix), nil
}

func (m *Minio) key(name string) string {
	return path.Join(m.prefix, name)
}

// Open opens the named data file. Compressed variants are tried in the same
// way as Dir.Open.
func (m *Minio) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return openAny(ctx, name, m.open)
}

func (m *Minio) open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := m.key(name)

	// Stat first so that missing objects are reported here rather than on
	// the first read.
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, fmt.Errorf("stat %q: %w", key, err)
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("getting %q: %w", key, err)
	}
	return obj, nil
}
