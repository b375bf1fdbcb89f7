package llm

import "testing"

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase json fence", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"crlf after fence", "```json\r\n{\"a\":1}\r\n```", `{"a":1}`},
		{"fence only at edges", "{\"a\":\"```\"}", "{\"a\":\"```\"}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StripFences(c.in); got != c.want {
				t.Errorf("StripFences(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
