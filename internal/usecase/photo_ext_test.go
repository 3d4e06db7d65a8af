package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "bark.jpg", "jpg"},
		{"last dot wins", "archive.tar.gz", "gz"},
		{"no dot", "snapshot", "jpg"},
		{"trailing dot", "photo.", "jpg"},
		{"hidden file", ".png", "png"},
		{"directory stripped", "../../etc/passwd.txt", "txt"},
		{"empty", "", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photoExt(tt.in))
		})
	}
}
