package services

import (
	"testing"

	"github.com/localnerve/staffdir/internal/dataset"
)

func TestAvatarURLRegisteredPath(t *testing.T) {
	store := &dataset.Store{
		Images: map[string]string{"001": "images/./alice.png"},
	}

	got := AvatarURL(store, "https://avatars.example/svg", "001")
	if got != "images/alice.png" {
		t.Errorf("Expected normalized path, got %q", got)
	}
}

func TestAvatarURLFallback(t *testing.T) {
	store := &dataset.Store{Images: map[string]string{}}

	got := AvatarURL(store, "https://api.dicebear.com/9.x/avataaars/svg", "00 7")
	want := "https://api.dicebear.com/9.x/avataaars/svg?seed=00+7"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
