package stream

import "testing"

func TestResolveEmbedURL(t *testing.T) {
	tests := map[string]struct {
		raw    string
		want   string
		wantOK bool
	}{
		"watch url":             {raw: "https://youtube.com/watch?v=abc123", want: "https://www.youtube.com/embed/abc123?autoplay=1", wantOK: true},
		"www watch url":         {raw: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42", want: "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", wantOK: true},
		"mobile watch url":      {raw: "https://m.youtube.com/watch?v=a-b_c", want: "https://www.youtube.com/embed/a-b_c?autoplay=1", wantOK: true},
		"short url":             {raw: "https://youtu.be/xyz", want: "https://www.youtube.com/embed/xyz?autoplay=1", wantOK: true},
		"short url with params": {raw: "https://youtu.be/xyz?si=share", want: "https://www.youtube.com/embed/xyz?autoplay=1", wantOK: true},
		"padded":                {raw: "  https://youtu.be/xyz  ", want: "https://www.youtube.com/embed/xyz?autoplay=1", wantOK: true},
		"vimeo":                 {raw: "https://vimeo.com/123"},
		"not a url":             {raw: "not a url"},
		"empty":                 {raw: ""},
		"bad escape":            {raw: "https://youtube.com/watch?v=%zz"},
		"missing v":             {raw: "https://youtube.com/watch?list=abc"},
		"channel page":          {raw: "https://youtube.com/@somechannel"},
		"short url no id":       {raw: "https://youtu.be/"},
		"short url nested path": {raw: "https://youtu.be/xyz/extra"},
		"malformed id":          {raw: "https://youtube.com/watch?v=abc<script>"},
		"control character":     {raw: "https://youtu.be/\x7f"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ResolveEmbedURL(tc.raw)
			if tc.wantOK != ok {
				t.Errorf("expected ok: '%v', got: '%v'", tc.wantOK, ok)
			}
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
