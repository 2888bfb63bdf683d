package domain

import (
	"fmt"
	"testing"
)

func testPost(caption string, timestamp int64) Post {
	return Post{
		PostURL:   fmt.Sprintf("http://www.humansofnewyork.com/post/%d", timestamp),
		Caption:   caption,
		Timestamp: timestamp,
		Slug:      fmt.Sprintf("slug-%d", timestamp),
	}
}

func TestSeriesPosition(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    int
		wantOK  bool
	}{
		{name: "with line breaks", caption: "<p>\n\n(3/6) &nbsp; “When the </p>", want: 3, wantOK: true},
		{name: "without line breaks", caption: "<p>(3/6) &nbsp; “When the </p>", want: 3, wantOK: true},
		{name: "two digits", caption: "<p>(12/14) “We met</p>", want: 12, wantOK: true},
		{name: "not a series", caption: "<p>“When the </p>", wantOK: false},
		{name: "three digits", caption: "<p>(123/200)</p>", wantOK: false},
		{name: "empty caption", caption: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SeriesPosition(testPost(tt.caption, 1000))
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("SeriesPosition() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindFollowingPost(t *testing.T) {
	current := testPost("current", 1000)
	following := testPost("following", 1001)

	t.Run("nominal", func(t *testing.T) {
		posts := []Post{testPost("", 1004), testPost("", 1003), following, current, testPost("", 999)}

		got := FindFollowingPost(posts, current)
		if got == nil || *got != following {
			t.Fatalf("FindFollowingPost() = %v, want %v", got, following)
		}
	})

	t.Run("current post first", func(t *testing.T) {
		posts := []Post{current, testPost("", 999), testPost("", 998)}

		if got := FindFollowingPost(posts, current); got != nil {
			t.Fatalf("FindFollowingPost() = %v, want nil", got)
		}
	})

	t.Run("current post second", func(t *testing.T) {
		posts := []Post{following, current, testPost("", 999)}

		if got := FindFollowingPost(posts, current); got != nil {
			t.Fatalf("FindFollowingPost() = %v, want nil", got)
		}
	})

	t.Run("current post not in list", func(t *testing.T) {
		posts := []Post{testPost("", 1004), testPost("", 1003), testPost("", 1002), following}

		if got := FindFollowingPost(posts, current); got != nil {
			t.Fatalf("FindFollowingPost() = %v, want nil", got)
		}
	})

	t.Run("no posts", func(t *testing.T) {
		if got := FindFollowingPost(nil, current); got != nil {
			t.Fatalf("FindFollowingPost() = %v, want nil", got)
		}
	})
}
