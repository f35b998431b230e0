package domain

import (
	"slices"
	"strconv"
	"testing"
)

func makeImages(n int) []ImageRef {
	images := make([]ImageRef, n)
	for i := range images {
		images[i] = ImageRef{
			StorageID: "id-" + strconv.Itoa(i),
			URL:       "https://cdn.example.com/" + strconv.Itoa(i),
		}
	}
	return images
}

func ids(images []ImageRef) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.StorageID
	}
	return out
}

func TestMoveImage(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"left neighbor", 2, 1, []string{"id-0", "id-2", "id-1", "id-3"}},
		{"right neighbor", 1, 2, []string{"id-0", "id-2", "id-1", "id-3"}},
		{"to front", 3, 0, []string{"id-3", "id-0", "id-1", "id-2"}},
		{"to back", 0, 3, []string{"id-1", "id-2", "id-3", "id-0"}},
		{"same index", 2, 2, []string{"id-0", "id-1", "id-2", "id-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveImage(makeImages(4), tt.from, tt.to)
			if len(got) != 4 {
				t.Fatalf("expected length 4, got %d", len(got))
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("expected order %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestMoveImage_OutOfRange(t *testing.T) {
	images := makeImages(3)

	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 7}} {
		got := MoveImage(images, pair[0], pair[1])
		if !slices.Equal(ids(got), ids(images)) {
			t.Errorf("move %v should leave order unchanged, got %v", pair, ids(got))
		}
	}
}

func TestMoveImage_DoesNotMutateInput(t *testing.T) {
	images := makeImages(4)
	before := slices.Clone(images)

	MoveImage(images, 0, 3)

	if !slices.Equal(ids(images), ids(before)) {
		t.Errorf("input slice mutated: %v", ids(images))
	}
}

func TestRemoveImage(t *testing.T) {
	got := RemoveImage(makeImages(4), 1)

	want := []string{"id-0", "id-2", "id-3"}
	if !slices.Equal(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestRemoveImage_OutOfRange(t *testing.T) {
	images := makeImages(2)

	for _, i := range []int{-1, 2, 10} {
		got := RemoveImage(images, i)
		if len(got) != 2 {
			t.Errorf("remove %d should be a no-op, got length %d", i, len(got))
		}
	}
}

func TestRemoveImage_DoesNotMutateInput(t *testing.T) {
	images := makeImages(3)

	RemoveImage(images, 0)

	if images[0].StorageID != "id-0" {
		t.Errorf("input slice mutated: first element %q", images[0].StorageID)
	}
}
