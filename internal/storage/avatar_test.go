package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"furls/dashboard/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestDetectImage(t *testing.T) {
	ct, ext, err := DetectImage(pngHeader)
	if err != nil || ct != "image/png" || ext != "png" {
		t.Errorf("png: %q %q %v", ct, ext, err)
	}
	if _, _, err := DetectImage([]byte("<html><body>hi</body></html>")); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("html: %v", err)
	}
	if _, _, err := DetectImage(nil); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("empty: %v", err)
	}
	big := append(append([]byte{}, pngHeader...), make([]byte, MaxAvatarBytes)...)
	if _, _, err := DetectImage(big); err == nil {
		t.Error("oversized avatar accepted")
	}
}

func TestPutAvatar(t *testing.T) {
	fake := &fakeS3{}
	store := newS3Store(fake, &config.Config{
		AvatarBucket:        "avatars-bucket",
		AvatarRegion:        "auto",
		AvatarPublicBaseURL: "https://cdn.example.com/",
	})

	url, err := store.PutAvatar(context.Background(), 7, pngHeader)
	if err != nil {
		t.Fatalf("PutAvatar: %v", err)
	}
	key := aws.ToString(fake.input.Key)
	if !strings.HasPrefix(key, "avatars/7/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
	if url != "https://cdn.example.com/"+key {
		t.Errorf("url = %q", url)
	}
	if aws.ToString(fake.input.Bucket) != "avatars-bucket" || aws.ToString(fake.input.ContentType) != "image/png" {
		t.Errorf("input = %+v", fake.input)
	}
	if len(fake.body) != len(pngHeader) {
		t.Errorf("uploaded %d bytes", len(fake.body))
	}
}

func TestPutAvatar_Errors(t *testing.T) {
	fake := &fakeS3{err: errors.New("boom")}
	store := newS3Store(fake, &config.Config{AvatarBucket: "b", AvatarRegion: "us-east-1"})
	if _, err := store.PutAvatar(context.Background(), 1, pngHeader); err == nil {
		t.Error("expected upload error")
	}
	if _, err := store.PutAvatar(context.Background(), 1, []byte("plain text")); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("text: %v", err)
	}
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		cfg  config.Config
		want string
	}{
		{config.Config{AvatarBucket: "b", AvatarRegion: "eu-west-1"}, "https://b.s3.eu-west-1.amazonaws.com"},
		{config.Config{AvatarBucket: "b", AvatarEndpoint: "http://minio:9000/"}, "http://minio:9000/b"},
		{config.Config{AvatarBucket: "b", AvatarPublicBaseURL: "https://img.example.com"}, "https://img.example.com"},
	}
	for _, tt := range tests {
		cfg := tt.cfg
		if got := newS3Store(&fakeS3{}, &cfg).publicBaseURL; got != tt.want {
			t.Errorf("base = %q, want %q", got, tt.want)
		}
	}
}

func TestInit_Disabled(t *testing.T) {
	Default = &S3Store{}
	if err := Init(context.Background(), &config.Config{}); err != nil {
		t.Fatal(err)
	}
	if Default != nil {
		t.Error("Default should be nil without a bucket")
	}
}
