package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lasudevlab/learnhub-backend/internal/types"
)

type fakeMediaStore struct {
	uploads map[string][]byte
	deleted []string
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{uploads: map[string][]byte{}}
}

func (s *fakeMediaStore) Upload(ctx context.Context, key string, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.uploads[key] = raw
	return nil
}

func (s *fakeMediaStore) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeMediaStore) PublicURL(key string) string {
	return "http://localhost:8080/media/" + key
}

func TestCreateAndUploadAvatarKeyLayout(t *testing.T) {
	store := newFakeMediaStore()
	svc, err := NewAvatarService(testLogger(), store)
	if err != nil {
		t.Fatalf("NewAvatarService failed: %v", err)
	}

	profile := testProfile(uuid.New(), nil)
	if err := svc.CreateAndUploadAvatar(context.Background(), profile); err != nil {
		t.Fatalf("CreateAndUploadAvatar failed: %v", err)
	}

	wantPrefix := "user_avatar/" + profile.ID.String() + "/"
	if !strings.HasPrefix(profile.AvatarKey, wantPrefix) || !strings.HasSuffix(profile.AvatarKey, ".png") {
		t.Fatalf("got key %q, want %s<ts>.png", profile.AvatarKey, wantPrefix)
	}
	if profile.AvatarURL != store.PublicURL(profile.AvatarKey) {
		t.Fatalf("got url %q, want the store url for %q", profile.AvatarURL, profile.AvatarKey)
	}
	if _, ok := store.uploads[profile.AvatarKey]; !ok {
		t.Fatalf("avatar object was not uploaded under %q", profile.AvatarKey)
	}
	if len(store.uploads[profile.AvatarKey]) == 0 {
		t.Fatalf("uploaded avatar is empty")
	}
}

func TestCreateAndUploadAvatarReplacesOldObject(t *testing.T) {
	store := newFakeMediaStore()
	svc, err := NewAvatarService(testLogger(), store)
	if err != nil {
		t.Fatalf("NewAvatarService failed: %v", err)
	}

	profile := testProfile(uuid.New(), func(p *types.Profile) {
		p.AvatarKey = "user_avatar/" + p.ID.String() + "/1.png"
	})
	oldKey := profile.AvatarKey
	if err := svc.CreateAndUploadAvatar(context.Background(), profile); err != nil {
		t.Fatalf("CreateAndUploadAvatar failed: %v", err)
	}

	if profile.AvatarKey == oldKey {
		t.Fatalf("avatar key should be re-versioned")
	}
	if len(store.deleted) != 1 || store.deleted[0] != oldKey {
		t.Fatalf("old object should be deleted, got %v", store.deleted)
	}
}
