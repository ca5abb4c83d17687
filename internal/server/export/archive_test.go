package export

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

type fakePresigner struct {
	key  string
	opts s3.PresignOptions
	err  error
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.key = *in.Key
	for _, fn := range optFns {
		fn(&f.opts)
	}
	return &v4.PresignedHTTPRequest{URL: "https://s3.example/" + *in.Key + "?sig=1"}, nil
}

func TestS3Archive_Store(t *testing.T) {
	put := &fakePutter{}
	pre := &fakePresigner{}
	a := &S3Archive{client: put, presigner: pre, bucket: "exports", expires: time.Minute}

	url, err := a.Store(context.Background(), "k/file.txt", []byte("hello"), "text/plain")
	require.NoError(t, err)

	assert.Equal(t, "https://s3.example/k/file.txt?sig=1", url)
	assert.Equal(t, "exports", *put.in.Bucket)
	assert.Equal(t, "k/file.txt", *put.in.Key)
	assert.Equal(t, "text/plain", *put.in.ContentType)
	assert.Equal(t, "hello", put.body)
	assert.Equal(t, "k/file.txt", pre.key)
	assert.Equal(t, time.Minute, pre.opts.Expires)
}

func TestS3Archive_StoreErrors(t *testing.T) {
	a := &S3Archive{client: &fakePutter{err: errors.New("denied")}, presigner: &fakePresigner{}, bucket: "b"}
	_, err := a.Store(context.Background(), "k", nil, "text/plain")
	require.ErrorContains(t, err, "denied")

	a = &S3Archive{client: &fakePutter{}, presigner: &fakePresigner{err: errors.New("no creds")}, bucket: "b"}
	_, err = a.Store(context.Background(), "k", nil, "text/plain")
	require.ErrorContains(t, err, "no creds")
}

func TestNewS3Archive(t *testing.T) {
	a, err := NewS3Archive(context.Background(), S3Config{
		AccessKey: "admin", SecretKey: "secret", Bucket: "exports",
		Region: "us-east-1", BaseEndpoint: "http://127.0.0.1:9000/",
	})
	require.NoError(t, err)
	assert.Equal(t, "exports", a.bucket)
	assert.Equal(t, 15*time.Minute, a.expires)
}

func TestStorageKey(t *testing.T) {
	k := StorageKey(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "scriptoria_20260102_0000.pdf")
	assert.True(t, strings.HasPrefix(k, "exports/2026/01/02/"))
	assert.True(t, strings.HasSuffix(k, "/scriptoria_20260102_0000.pdf"))
}
