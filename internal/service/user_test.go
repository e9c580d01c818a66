package service

import (
	"context"
	"testing"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/policy"
)

func seedUser(t *testing.T, users *memUserStore, id string, admin bool) {
	t.Helper()
	err := users.Insert(context.Background(), &model.User{
		ID:      id,
		Email:   id + "@x.com",
		Name:    id,
		IsAdmin: admin,
	})
	if err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
}

func TestEditOwnFields(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, policy.New(false))
	seedUser(t, users, "u1", false)
	ctx := context.Background()

	name := "New Name"
	pass := "newsecret"
	if err := svc.Edit(ctx, "u1", model.UserUpdate{Name: &name, Password: &pass}); err != nil {
		t.Fatalf("Edit() unexpected error: %v", err)
	}

	u, err := users.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if u.Name != "New Name" {
		t.Errorf("name = %q, want %q", u.Name, "New Name")
	}
	if u.PasswordHash == "newsecret" || u.PasswordHash == "" {
		t.Error("edited password must be stored hashed")
	}
}

func TestEditEmptyUpdate(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, policy.New(false))
	seedUser(t, users, "u1", false)

	err := svc.Edit(context.Background(), "u1", model.UserUpdate{})
	if !apperror.Is(err, apperror.MissingParameters) {
		t.Errorf("Edit() got %v, want MissingParameters", err)
	}
}

func TestEditAdminFlag(t *testing.T) {
	ctx := context.Background()
	promote := true

	// Non-admin cannot self-promote under the enforcing policy.
	users := newMemUserStore()
	svc := NewUserService(users, policy.New(false))
	seedUser(t, users, "u1", false)
	err := svc.Edit(ctx, "u1", model.UserUpdate{IsAdmin: &promote})
	if !apperror.Is(err, apperror.Forbidden) {
		t.Errorf("Edit() got %v, want Forbidden", err)
	}

	// An admin can change the flag.
	seedUser(t, users, "u2", true)
	if err := svc.Edit(ctx, "u2", model.UserUpdate{IsAdmin: &promote}); err != nil {
		t.Errorf("Edit() by admin unexpected error: %v", err)
	}

	// Legacy mode reproduces the self-promotion gap.
	users = newMemUserStore()
	svc = NewUserService(users, policy.New(true))
	seedUser(t, users, "u1", false)
	if err := svc.Edit(ctx, "u1", model.UserUpdate{IsAdmin: &promote}); err != nil {
		t.Errorf("Edit() in legacy mode unexpected error: %v", err)
	}
	u, _ := users.FindByID(ctx, "u1")
	if !u.IsAdmin {
		t.Error("legacy mode should allow self-promotion")
	}
}

func TestListAllRequiresAdmin(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, policy.New(false))
	seedUser(t, users, "u1", false)
	seedUser(t, users, "u2", true)
	ctx := context.Background()

	if _, err := svc.ListAll(ctx, "u1"); !apperror.Is(err, apperror.Forbidden) {
		t.Errorf("ListAll() by non-admin got %v, want Forbidden", err)
	}

	all, err := svc.ListAll(ctx, "u2")
	if err != nil {
		t.Fatalf("ListAll() by admin unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListAll() returned %d users, want 2", len(all))
	}
}

func TestDeleteUser(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, policy.New(false))
	seedUser(t, users, "u1", false)
	seedUser(t, users, "admin", true)
	ctx := context.Background()

	if err := svc.DeleteUser(ctx, "u1", "admin"); !apperror.Is(err, apperror.Forbidden) {
		t.Errorf("DeleteUser() by non-admin got %v, want Forbidden", err)
	}

	if err := svc.DeleteUser(ctx, "admin", "u1"); err != nil {
		t.Fatalf("DeleteUser() by admin unexpected error: %v", err)
	}
	if _, err := users.FindByID(ctx, "u1"); !apperror.Is(err, apperror.NotFound) {
		t.Error("deleted user should be gone")
	}

	if err := svc.DeleteUser(ctx, "admin", "u1"); !apperror.Is(err, apperror.NotFound) {
		t.Errorf("DeleteUser() of missing user got %v, want NotFound", err)
	}

	if err := svc.DeleteUser(ctx, "admin", ""); !apperror.Is(err, apperror.MissingParameters) {
		t.Errorf("DeleteUser() with empty id got %v, want MissingParameters", err)
	}
}
