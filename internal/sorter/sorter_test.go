package sorter

import (
	"slices"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"

	"github.com/phyten/sortwind/internal/order"
)

func TestSortExamples(t *testing.T) {
	def := order.Default()
	cases := []struct {
		name  string
		in    string
		dedup bool
		want  string
	}{
		{
			name:  "dedupAndRank",
			in:    "absolute opacity-0 scale-75 top-8 right-0 text-sm p-1 bg-white bg-white",
			dedup: true,
			want:  "absolute right-0 top-8 p-1 text-sm bg-white opacity-0 scale-75",
		},
		{
			name: "prefixedTrail",
			in:   "hover:scale-75 dark:hover:text-purple-400 size-5 hover:text-purple-600 absolute transition-all",
			want: "size-5 absolute transition-all dark:hover:text-purple-400 hover:text-purple-600 hover:scale-75",
		},
		{
			name: "unknownAlphabetical",
			in:   "btn-primary btn-submit btn",
			want: "btn btn-primary btn-submit",
		},
		{
			name: "keepDuplicates",
			in:   "p-1 flex p-1",
			want: "flex p-1 p-1",
		},
		{
			name: "surroundingWhitespace",
			in:   "  p-1\n\tflex  ",
			want: "flex p-1",
		},
		{
			name: "prefixKeepsColon",
			in:   "peer:flex peer-checked:flex",
			want: "peer-checked:flex peer:flex",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SortClassString(tc.in, def, Options{RemoveDuplicates: tc.dedup})
			if err != nil {
				t.Fatalf("SortClassString error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("SortClassString(%q)\n got  %q\n want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	s := New(order.Default())
	inputs := []string{
		"hover:scale-75 dark:hover:text-purple-400 size-5 hover:text-purple-600 absolute transition-all",
		"Btn btn b-tn hover:foo hover:bar md:hover:p-1 md:flex",
		"z-10 bg-white text-black custom custom",
	}
	for _, in := range inputs {
		for _, dedup := range []bool{true, false} {
			opts := Options{RemoveDuplicates: dedup}
			once, err := s.Sort(in, opts)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := s.Sort(once, opts)
			if err != nil {
				t.Fatal(err)
			}
			if once != twice {
				t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
			}
		}
	}
}

func TestSortBucketOrder(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	got := s.SortTokens([]string{"x:a", "c", "zz", "a", "y:b", "aa"})
	want := []string{"aa", "zz", "a", "c", "x:a", "y:b"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortTokens=%v want %v", got, want)
	}
}

func TestSortUnknownBaseFirstWithinPrefix(t *testing.T) {
	s := New([]string{"p-1", "m-1"})
	got := s.SortTokens([]string{"md:m-1", "md:custom", "md:p-1"})
	want := []string{"md:custom", "md:p-1", "md:m-1"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortTokens=%v want %v", got, want)
	}
}

func TestSortPrefixedIgnoresOrderMembership(t *testing.T) {
	// a token containing ':' is prefixed even when listed in the order
	s := New([]string{"hover:p-1", "p-1"})
	got := s.SortTokens([]string{"hover:p-1", "p-1"})
	want := []string{"p-1", "hover:p-1"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortTokens=%v want %v", got, want)
	}
}

func TestSortRankMonotonic(t *testing.T) {
	def := order.Default()
	s := New(def)
	tokens := []string{"scale-75", "bg-white", "p-1", "absolute", "text-sm", "z-10", "flex"}
	got := s.SortTokens(tokens)
	for i := 1; i < len(got); i++ {
		if s.Rank(got[i-1]) >= s.Rank(got[i]) {
			t.Fatalf("rank not ascending at %d: %v", i, got)
		}
	}
}

func TestNewFirstIndexWins(t *testing.T) {
	s := New([]string{"a", "b", "a"})
	if s.Rank("a") != 0 || s.Rank("b") != 1 || s.Rank("zz") != -1 {
		t.Fatalf("ranks a=%d b=%d zz=%d", s.Rank("a"), s.Rank("b"), s.Rank("zz"))
	}
}

func TestSortCustomSeparatorAndJoiner(t *testing.T) {
	sep := regexp2.MustCompile(`,`, regexp2.ECMAScript)
	got, err := SortClassString("p-1,flex,custom", order.Default(), Options{Separator: sep, Joiner: ","})
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom,flex,p-1" {
		t.Fatalf("got %q", got)
	}
}

func TestSortDedupCountsEachTokenOnce(t *testing.T) {
	in := "p-1 flex p-1 hover:p-1 hover:p-1 foo foo flex"
	got, err := SortClassString(in, order.Default(), Options{RemoveDuplicates: true})
	if err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{}
	for _, tok := range strings.Fields(got) {
		counts[tok]++
	}
	for tok, n := range counts {
		if n != 1 {
			t.Fatalf("%q appears %d times in %q", tok, n, got)
		}
	}
	if len(counts) != 4 {
		t.Fatalf("got %q", got)
	}
}
