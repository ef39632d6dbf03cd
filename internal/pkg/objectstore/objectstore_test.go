package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/imageutil"
)

type storedObject struct {
	data []byte
	opts PutOptions
}

// fakeBackend records puts/removes in memory
type fakeBackend struct {
	mu      sync.Mutex
	objects map[string]storedObject
	putErr  error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{objects: map[string]storedObject{}}
}

func (f *fakeBackend) Put(_ context.Context, bucket, objectPath string, r io.Reader, size int64, opts PutOptions) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+objectPath] = storedObject{data: data, opts: opts}
	return nil
}

func (f *fakeBackend) PublicURL(bucket, objectPath string) (string, error) {
	return "https://cdn.example.com/" + bucket + "/" + objectPath, nil
}

func (f *fakeBackend) Remove(_ context.Context, bucket, objectPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := bucket + "/" + objectPath
	if _, ok := f.objects[key]; !ok {
		return errors.New("object not found")
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeBackend) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for k := range f.objects {
		out = append(out, k)
	}
	return out
}

var testBuckets = Buckets{Uploads: "uploads", News: "campus-news"}

func newTestService(backend Backend) *Service {
	return NewService(backend, testBuckets, imageutil.Options{})
}

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestUploadImage_RejectsOversizeBeforeBackendCall(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	big := make([]byte, 10<<20)
	fh := fileHeader(t, "huge.png", "image/png", big)

	_, err := svc.UploadImage(context.Background(), fh, "hostels", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))
	assert.Empty(t, backend.paths(), "no backend call may happen on validation failure")
}

func TestUploadImage_Validation(t *testing.T) {
	svc := newTestService(newFakeBackend())
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, nil, "hostels", "")
	assert.True(t, errors.Is(err, apperrors.ErrFileMissing))

	fh := fileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF"))
	_, err = svc.UploadImage(ctx, fh, "hostels", "")
	assert.True(t, errors.Is(err, apperrors.ErrFileNotImage))

	fh = fileHeader(t, "image.tiff", "image/tiff", []byte{0x49, 0x49})
	_, err = svc.UploadImage(ctx, fh, "hostels", "")
	assert.True(t, errors.Is(err, apperrors.ErrFileTypeUnsupported))
}

func TestUploadImage_NewsSkipsCategorySegment(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	fh := fileHeader(t, "story.jpg", "image/jpeg", jpegBytes(t, 100, 80))
	url, err := svc.UploadImage(context.Background(), fh, "news", "")
	require.NoError(t, err)
	assert.Contains(t, url, "/campus-news/")

	paths := backend.paths()
	require.Len(t, paths, 1)
	rest := strings.TrimPrefix(paths[0], "campus-news/")
	assert.False(t, strings.HasPrefix(rest, "news/"), "news objects carry no news/ segment: %s", paths[0])
	assert.True(t, strings.HasSuffix(rest, ".jpg"))
}

func TestUploadImage_PathLayoutAndOptions(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	fh := fileHeader(t, "room.jpg", "image/jpeg", jpegBytes(t, 100, 80))
	url, err := svc.UploadImage(context.Background(), fh, "hostels", "sunrise-lodge")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	paths := backend.paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasPrefix(paths[0], "uploads/hostels/sunrise-lodge/"), paths[0])

	obj := backend.objects[paths[0]]
	assert.Equal(t, "max-age=3600", obj.opts.CacheControl)
	assert.True(t, obj.opts.Upsert)
	assert.Equal(t, "image/jpeg", obj.opts.ContentType)
}

func TestUploadImage_CompressionFailureFallsBackToOriginal(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	// Valid extension and content type but undecodable payload: the
	// optimization step fails and the original bytes are uploaded.
	payload := []byte("definitely not a jpeg")
	fh := fileHeader(t, "corrupt.jpg", "image/jpeg", payload)

	url, err := svc.UploadImage(context.Background(), fh, "hostels", "")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	paths := backend.paths()
	require.Len(t, paths, 1)
	assert.Equal(t, payload, backend.objects[paths[0]].data)
}

func TestUploadImage_BackendFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.putErr = errors.New("bucket quota exceeded")
	svc := newTestService(backend)

	fh := fileHeader(t, "room.jpg", "image/jpeg", jpegBytes(t, 10, 10))
	_, err := svc.UploadImage(context.Background(), fh, "hostels", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUploadFailed))
}

func TestUploadImages_AllOrNothing(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	ok := fileHeader(t, "a.jpg", "image/jpeg", jpegBytes(t, 10, 10))
	bad := fileHeader(t, "b.tiff", "image/tiff", []byte{0x49})

	urls, err := svc.UploadImages(context.Background(), []*multipart.FileHeader{ok, bad}, "events", "")
	require.Error(t, err)
	assert.Nil(t, urls)

	urls, err = svc.UploadImages(context.Background(), []*multipart.FileHeader{ok, ok}, "events", "")
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.NotEmpty(t, urls[0])
	assert.NotEmpty(t, urls[1])
}

func TestDeleteImage(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	fh := fileHeader(t, "room.jpg", "image/jpeg", jpegBytes(t, 10, 10))
	url, err := svc.UploadImage(context.Background(), fh, "hostels", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(context.Background(), url, "hostels"))
	assert.Empty(t, backend.paths())
}

func TestDeleteImage_PathValidation(t *testing.T) {
	svc := newTestService(newFakeBackend())
	ctx := context.Background()

	// Bucket segment absent
	err := svc.DeleteImage(ctx, "https://cdn.example.com/other/hostels/a.jpg", "hostels")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStoragePath))

	// Empty derived path
	err = svc.DeleteImage(ctx, "https://cdn.example.com/uploads/", "hostels")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStoragePath))

	// Cross-category deletion guard
	err = svc.DeleteImage(ctx, "https://cdn.example.com/uploads/events/x/a.jpg", "hostels")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStoragePath))
}
