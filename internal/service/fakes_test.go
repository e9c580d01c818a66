package service

import (
	"context"
	"io"
	"sync"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/model"
)

// memUserStore is an in-memory UserStore for service tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (m *memUserStore) Insert(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.New(apperror.AlreadyRegistered, "user is already registered")
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.New(apperror.NotFound, "user not found")
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.New(apperror.NotFound, "user not found")
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) Update(_ context.Context, id string, set map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return apperror.New(apperror.NotFound, "user not found")
	}
	for k, v := range set {
		switch k {
		case "email":
			u.Email = v.(string)
		case "name":
			u.Name = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "is_admin":
			u.IsAdmin = v.(bool)
		}
	}
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return apperror.New(apperror.NotFound, "user not found")
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) FindAll(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserStore) AttachPicture(_ context.Context, userID, pictureID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.AllPictures = append(u.AllPictures, pictureID)
	}
	return nil
}

func (m *memUserStore) DetachPicture(_ context.Context, userID, pictureID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	kept := u.AllPictures[:0]
	for _, id := range u.AllPictures {
		if id != pictureID {
			kept = append(kept, id)
		}
	}
	u.AllPictures = kept
	return nil
}

// memPictureStore is an in-memory PictureStore for service tests.
type memPictureStore struct {
	mu       sync.Mutex
	pictures map[string]*model.Picture
}

func newMemPictureStore() *memPictureStore {
	return &memPictureStore{pictures: make(map[string]*model.Picture)}
}

func (m *memPictureStore) Insert(_ context.Context, pic *model.Picture) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *pic
	m.pictures[pic.ID] = &cp
	return nil
}

func (m *memPictureStore) FindByID(_ context.Context, id string) (*model.Picture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pictures[id]
	if !ok {
		return nil, apperror.New(apperror.NotFound, "photo not found")
	}
	cp := *p
	return &cp, nil
}

func (m *memPictureStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pictures[id]; !ok {
		return apperror.New(apperror.NotFound, "photo not found")
	}
	delete(m.pictures, id)
	return nil
}

func (m *memPictureStore) FindByCreator(_ context.Context, creatorID string) ([]model.Picture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Picture
	for _, p := range m.pictures {
		if p.CreatorID == creatorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// memFileStore records saved files without touching the filesystem.
type memFileStore struct {
	saved   int
	removed []string
}

func (m *memFileStore) Save(src io.Reader) (string, string, error) {
	io.Copy(io.Discard, src)
	m.saved++
	return "file-1", "uploads/file-1", nil
}

func (m *memFileStore) Remove(filename string) error {
	m.removed = append(m.removed, filename)
	return nil
}
