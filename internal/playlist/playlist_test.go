//nolint:goconst // test file with repeated string literals
package playlist

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	p, err := New(Track{Link: "/a.mp3", Name: "A"}, Track{Link: "/b.mp3", Name: "B"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if p.Last() != 1 {
		t.Errorf("Last() = %d, want 1", p.Last())
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New()

	if !errors.Is(err, ErrEmpty) {
		t.Errorf("New() error = %v, want ErrEmpty", err)
	}
}

func TestNew_MissingLink(t *testing.T) {
	_, err := New(Track{Link: "/a.mp3"}, Track{Name: "no link"})

	if err == nil {
		t.Error("New() should reject a track without link")
	}
}

func TestNew_NamesFromLink(t *testing.T) {
	p, err := New(
		Track{Link: "/music/First Song.mp3"},
		Track{Link: "file:///music/Second%20Song.flac"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tracks := p.Tracks()
	if tracks[0].Name != "First Song" {
		t.Errorf("tracks[0].Name = %q, want First Song", tracks[0].Name)
	}
	if tracks[1].Name != "Second Song" {
		t.Errorf("tracks[1].Name = %q, want Second Song", tracks[1].Name)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Track{{Link: "/a.mp3", Name: "A"}}
	p, err := New(in...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	in[0].Name = "changed"

	if got, _ := p.At(0); got.Name != "A" {
		t.Errorf("At(0).Name = %q, want A", got.Name)
	}
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p, _ := New(Track{Link: "/a.mp3", Name: "A"})

	tracks := p.Tracks()
	tracks[0].Link = "/modified.mp3"

	if got, _ := p.At(0); got.Link != "/a.mp3" {
		t.Error("Tracks() should return a copy")
	}
}

func TestPlaylist_At(t *testing.T) {
	p, _ := New(Track{Link: "/a.mp3"}, Track{Link: "/b.mp3"}, Track{Link: "/c.mp3"})

	tests := []struct {
		name   string
		index  int
		wantOK bool
		want   string
	}{
		{"first", 0, true, "/a.mp3"},
		{"last", 2, true, "/c.mp3"},
		{"negative", -1, false, ""},
		{"past end", 3, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.At(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("At(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if got.Link != tt.want {
				t.Errorf("At(%d).Link = %q, want %q", tt.index, got.Link, tt.want)
			}
			if p.Valid(tt.index) != tt.wantOK {
				t.Errorf("Valid(%d) = %v, want %v", tt.index, p.Valid(tt.index), tt.wantOK)
			}
		})
	}
}

func TestDefaultTracks(t *testing.T) {
	tracks := DefaultTracks()

	if len(tracks) != 3 {
		t.Fatalf("len(DefaultTracks()) = %d, want 3", len(tracks))
	}
	want := []string{"Light and Dark", "Shake Shake", "You and I"}
	for i, name := range want {
		if tracks[i].Name != name {
			t.Errorf("tracks[%d].Name = %q, want %q", i, tracks[i].Name, name)
		}
	}
	if _, err := New(tracks...); err != nil {
		t.Errorf("New(DefaultTracks()) error = %v", err)
	}
}
