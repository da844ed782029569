package stderr

import (
	"strings"
	"testing"
)

func TestPump_ForwardsTrimmedLines(t *testing.T) {
	out := make(chan string, 10)

	pump(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  second line  \n"), out)
	close(out)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	want := []string{"ALSA lib pcm.c: underrun", "second line"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %q", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPump_DropsWhenFull(t *testing.T) {
	out := make(chan string, 1)

	pump(strings.NewReader("a\nb\nc\n"), out)

	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if line := <-out; line != "a" {
		t.Errorf("first line = %q, want a", line)
	}
}
