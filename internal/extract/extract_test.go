package extract

import (
	"testing"
	"time"

	"github.com/dlclark/regexp2"
)

func compile(t *testing.T, patterns ...string) []*regexp2.Regexp {
	t.Helper()
	out := make([]*regexp2.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp2.MustCompile(p, regexp2.IgnoreCase|regexp2.ECMAScript))
	}
	return out
}

func TestCollectSinglePattern(t *testing.T) {
	text := `<div class="p-1 m-2"></div><span class="flex"></span>`
	got, err := Collect(compile(t, `class="([^"]*)"`), text, 0)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	want := []Match{
		{Text: "p-1 m-2", Offset: 12, Length: 7},
		{Text: "flex", Offset: 40, Length: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d = %+v want %+v", i, got[i], want[i])
		}
		if text[got[i].Offset:got[i].End()] != got[i].Text {
			t.Fatalf("offset of %q does not point at the value", got[i].Text)
		}
	}
}

func TestCollectNestedChain(t *testing.T) {
	text := `x <A className={cn("p-1 m-2", "flex")} /> y <B className={cn("block")} />`
	patterns := compile(t, `className=\{cn\(([^)]*)\)\}`, `"([^"]*)"`)
	got, err := Collect(patterns, text, 0)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	wantText := []string{"p-1 m-2", "flex", "block"}
	if len(got) != len(wantText) {
		t.Fatalf("got %v", got)
	}
	for i, m := range got {
		if m.Text != wantText[i] {
			t.Fatalf("match %d text=%q want %q", i, m.Text, wantText[i])
		}
		if text[m.Offset:m.End()] != m.Text {
			t.Fatalf("match %d offset %d does not locate %q", i, m.Offset, m.Text)
		}
	}
}

func TestCollectUsesLastOccurrenceInsideMatch(t *testing.T) {
	got, err := Collect(compile(t, `data-a="(a)"`), `data-a="a"`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Offset != 8 {
		t.Fatalf("got %+v, want offset 8", got)
	}

	// the value text repeats after the group, the later copy wins
	got, err = Collect(compile(t, `"(a)"a`), `"a"a`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Offset != 3 {
		t.Fatalf("got %+v, want offset 3", got)
	}
}

func TestCollectBaseOffset(t *testing.T) {
	got, err := Collect(compile(t, `"([^"]*)"`), `"flex"`, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Offset != 101 {
		t.Fatalf("got %+v", got)
	}
}

func TestCollectSkipsEmptyValues(t *testing.T) {
	got, err := Collect(compile(t, `class="([^"]*)"`), `class="" class="p-1"`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Text != "p-1" {
		t.Fatalf("got %+v", got)
	}
}

func TestCollectSkipsPatternsWithoutGroup(t *testing.T) {
	got, err := Collect(compile(t, `class="[^"]*"`), `class="p-1"`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestCollectUsesFirstParticipatingGroup(t *testing.T) {
	got, err := Collect(compile(t, `class=(?:"([^"]*)"|'([^']*)')`), `class='p-1' class="m-2"`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Text != "p-1" || got[1].Text != "m-2" {
		t.Fatalf("got %+v", got)
	}
	if got[0].Offset != 7 || got[1].Offset != 19 {
		t.Fatalf("offsets %d %d", got[0].Offset, got[1].Offset)
	}
}

func TestCollectEmptyPatterns(t *testing.T) {
	got, err := Collect(nil, `class="p-1"`, 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v err %v", got, err)
	}
}

func TestCollectMultibyteOffsets(t *testing.T) {
	text := `<p title="日本語" class="p-1 m-2">`
	got, err := Collect(compile(t, `class="([^"]*)"`), text, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || text[got[0].Offset:got[0].End()] != "p-1 m-2" {
		t.Fatalf("got %+v", got)
	}
}

func TestLeavesIsRestartable(t *testing.T) {
	seq := Leaves(compile(t, `"([^"]*)"`), `"a" "b" "c"`, 0)
	count := func() int {
		n := 0
		for _, err := range seq {
			if err != nil {
				t.Fatal(err)
			}
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 3 || b != 3 {
		t.Fatalf("passes yielded %d and %d matches", a, b)
	}
}

func TestLeavesStopsEarly(t *testing.T) {
	n := 0
	for range Leaves(compile(t, `"([^"]*)"`), `"a" "b" "c"`, 0) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("n=%d", n)
	}
}

func TestLeavesReportsTimeout(t *testing.T) {
	re := regexp2.MustCompile(`(a+)+$`, regexp2.None)
	re.MatchTimeout = time.Millisecond
	text := ""
	for i := 0; i < 40; i++ {
		text += "a"
	}
	text += "!"
	_, err := Collect([]*regexp2.Regexp{re}, text, 0)
	if err == nil {
		t.Fatal("expected a match timeout error")
	}
}
