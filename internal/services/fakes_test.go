package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

// fakeBlob is an in-memory storage.Client. Keys map to content types so
// Copy/ContentType behave like the real thing without a bucket.
type fakeBlob struct {
	objects map[string]string

	uploads []string
	copies  [][2]string
	deletes []string

	copyErr   error
	deleteErr error
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{objects: map[string]string{}}
}

func (f *fakeBlob) seed(key, contentType string) {
	f.objects[key] = contentType
}

func (f *fakeBlob) Upload(_ context.Context, key string, _ io.Reader, contentType string) (string, error) {
	f.uploads = append(f.uploads, key)
	f.objects[key] = contentType
	return f.URL(key), nil
}

func (f *fakeBlob) Copy(_ context.Context, srcKey, dstKey string) (string, error) {
	if f.copyErr != nil {
		return "", f.copyErr
	}
	ct, ok := f.objects[srcKey]
	if !ok {
		return "", errors.New("NoSuchKey: " + srcKey)
	}
	f.objects[dstKey] = ct
	f.copies = append(f.copies, [2]string{srcKey, dstKey})
	return f.URL(dstKey), nil
}

func (f *fakeBlob) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeBlob) ContentType(_ context.Context, key string) (string, error) {
	ct, ok := f.objects[key]
	if !ok {
		return "", errors.New("NotFound: " + key)
	}
	return ct, nil
}

func (f *fakeBlob) URL(key string) string {
	return "https://blob.test/" + key
}

func (f *fakeBlob) remainingKeys() []string {
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	return keys
}

type fakePropertyRepo struct {
	created   []*models.Property
	createErr error
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

type fakeAddressRepo struct {
	rows        map[string]*models.GoogleAddress
	createCalls int
	findErr     error
	createErr   error
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{rows: map[string]*models.GoogleAddress{}}
}

func (f *fakeAddressRepo) FindByCoordinates(_ context.Context, latitude, longitude string) (*models.GoogleAddress, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows[latitude+"|"+longitude], nil
}

func (f *fakeAddressRepo) Create(_ context.Context, a *models.GoogleAddress) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createCalls++
	f.rows[a.Latitude+"|"+a.Longitude] = a
	return nil
}

func keysWithPrefix(keys []string, prefix string) []string {
	var out []string
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}
