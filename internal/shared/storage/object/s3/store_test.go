package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-scoring/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "sources/owner/file.pdf", want: "sources/owner/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "sources/owner/file.pdf", want: "root/sources/owner/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "sources/owner/file.pdf", want: "root/sources/owner/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/sources/owner/file.pdf", want: "root/sources/owner/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "sources/owner/file.pdf", want: "root/sub/sources/owner/file.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	objects map[string][]byte
	lastPut *s3.PutObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestStorePutUsesPrefixAndEncryption(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := NewWithClient(fake, Options{Bucket: "assets", Prefix: "/prod/", KMSKeyID: "kms-1"})

	n, err := store.Put(context.Background(), "sources/o/a/cv.pdf", "application/pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != int64(len("pdf-bytes")) {
		t.Fatalf("unexpected size %d", n)
	}
	if got := aws.ToString(fake.lastPut.Key); got != "prod/sources/o/a/cv.pdf" {
		t.Fatalf("unexpected object key %q", got)
	}
	if fake.lastPut.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("expected kms encryption, got %q", fake.lastPut.ServerSideEncryption)
	}

	rc, err := store.Open(context.Background(), "sources/o/a/cv.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "pdf-bytes" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestStoreOpenMissingMapsNotFound(t *testing.T) {
	store := NewWithClient(&fakeS3{objects: map[string][]byte{}}, Options{Bucket: "assets"})

	_, err := store.Open(context.Background(), "missing")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Options{Region: "us-east-1"}); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func TestNewWithCompatibleEndpoint(t *testing.T) {
	store, err := New(context.Background(), Options{
		Region:          "us-east-1",
		Bucket:          "sources",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client, ok := store.client.(*s3.Client)
	if !ok {
		t.Fatalf("expected *s3.Client, got %T", store.client)
	}
	opts := client.Options()
	if aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" || !opts.UsePathStyle {
		t.Fatalf("endpoint not applied: %v %v", aws.ToString(opts.BaseEndpoint), opts.UsePathStyle)
	}
	creds, err := opts.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "AKID" {
		t.Fatalf("unexpected access key %q", creds.AccessKeyID)
	}
}
