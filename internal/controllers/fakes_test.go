package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/elbarryamine/atikia-plugin-server/internal/middleware"
	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

// fakeBlob mirrors storage.Client in memory so controller tests can run
// the full service pipeline underneath the handlers.
type fakeBlob struct {
	objects map[string]string
	uploads []string
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{objects: map[string]string{}}
}

func (f *fakeBlob) Upload(_ context.Context, key string, _ io.Reader, contentType string) (string, error) {
	f.uploads = append(f.uploads, key)
	f.objects[key] = contentType
	return f.URL(key), nil
}

func (f *fakeBlob) Copy(_ context.Context, srcKey, dstKey string) (string, error) {
	ct, ok := f.objects[srcKey]
	if !ok {
		return "", errors.New("NoSuchKey: " + srcKey)
	}
	f.objects[dstKey] = ct
	return f.URL(dstKey), nil
}

func (f *fakeBlob) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
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

type fakePropertyRepo struct {
	created []*models.Property
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.created = append(f.created, p)
	return nil
}

type fakeAddressRepo struct {
	rows map[string]*models.GoogleAddress
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{rows: map[string]*models.GoogleAddress{}}
}

func (f *fakeAddressRepo) FindByCoordinates(_ context.Context, latitude, longitude string) (*models.GoogleAddress, error) {
	return f.rows[latitude+"|"+longitude], nil
}

func (f *fakeAddressRepo) Create(_ context.Context, a *models.GoogleAddress) error {
	f.rows[a.Latitude+"|"+a.Longitude] = a
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

// authedRequest builds a request carrying the user ID the API-key
// middleware would have set.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserID, userID.String())
	return req.WithContext(ctx)
}
