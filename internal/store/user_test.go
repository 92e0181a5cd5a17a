package store

import (
	"errors"
	"testing"
)

func TestUserCreateAndGet(t *testing.T) {
	store := NewUserStore()

	user, err := store.Create("marta", "contraseña-segura")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" {
		t.Error("created user has empty id")
	}
	if user.PasswordHash == "contraseña-segura" {
		t.Error("password stored in clear")
	}

	got, err := store.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "marta" {
		t.Errorf("username = %q, want %q", got.Username, "marta")
	}

	byName, err := store.GetByUsername("marta")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("id by username = %q, want %q", byName.ID, user.ID)
	}
}

func TestUserCreateRejectsTakenUsername(t *testing.T) {
	store := NewUserStore()
	if _, err := store.Create("marta", "una"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create("marta", "otra"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate create error = %v, want ErrUsernameTaken", err)
	}
}

func TestUserNotFound(t *testing.T) {
	store := NewUserStore()
	if _, err := store.Get("no-existe"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Get error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetByUsername("nadie"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByUsername error = %v, want ErrUserNotFound", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	store := NewUserStore()
	if _, err := store.Create("marta", "contraseña-segura"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if !store.VerifyPassword("marta", "contraseña-segura") {
		t.Error("correct password rejected")
	}
	if store.VerifyPassword("marta", "incorrecta") {
		t.Error("wrong password accepted")
	}
	if store.VerifyPassword("nadie", "contraseña-segura") {
		t.Error("unknown user accepted")
	}
}
