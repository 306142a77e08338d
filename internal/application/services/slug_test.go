package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "avatar", "avatar"},
		{"uppercase folded", "MyPhoto", "myphoto"},
		{"spaces collapsed", "my  holiday photo", "my-holiday-photo"},
		{"accents stripped", "niño café", "nino-cafe"},
		{"punctuation collapsed", "photo (1) - final!!", "photo-1-final"},
		{"leading and trailing junk trimmed", "--_photo_--", "photo"},
		{"digits kept", "IMG_20240101_123", "img-20240101-123"},
		{"nothing usable falls back", "££££", "photo"},
		{"empty falls back", "", "photo"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.in))
		})
	}
}

func TestPhotoFileName(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "avatar.png", "1700000000_avatar.png"},
		{"uppercase extension lowered", "Avatar.PNG", "1700000000_avatar.png"},
		{"spaces and accents", "Foto Ñiño.jpeg", "1700000000_foto-nino.jpeg"},
		{"client path stripped", "/home/user/pics/avatar.jpg", "1700000000_avatar.jpg"},
		{"windows path stripped", `C:\Users\user\avatar.jpg`, "1700000000_avatar.jpg"},
		{"no extension", "avatar", "1700000000_avatar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photoFileName(tt.in, ts))
		})
	}
}
