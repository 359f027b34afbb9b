package scores

import (
	"encoding/json"
	"testing"
)

func TestEntryID_UnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want EntryID
	}{
		{"number", `{"id":12}`, "12"},
		{"large number", `{"id":9007199254740993}`, "9007199254740993"},
		{"string", `{"id":"a-1"}`, "a-1"},
		{"null", `{"id":null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var e Entry
			if err := json.Unmarshal([]byte(tc.in), &e); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if e.ID != tc.want {
				t.Fatalf("ID = %q, want %q", e.ID, tc.want)
			}
		})
	}
}

func TestEntry_UnmarshalToleratesScoreShapes(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"id":3,"user":"Ann","score":42.0,"game":"MansionGame"}`), &e); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := Entry{ID: "3", User: "Ann", Score: 42, GameName: "MansionGame"}
	if e != want {
		t.Fatalf("Entry = %#v, want %#v", e, want)
	}

	if err := json.Unmarshal([]byte(`[1]`), &e); err == nil {
		t.Fatalf("Unmarshal of an array returned nil error")
	}
}

func TestDecodeElementary(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Entry
	}{
		{
			name: "integer scores",
			in:   `[{"id":1,"user":"a","score":100},{"id":2,"user":"b","score":7}]`,
			want: []Entry{{ID: "1", User: "a", Score: 100}, {ID: "2", User: "b", Score: 7}},
		},
		{
			name: "decimal scores truncate",
			in:   `[{"id":1,"user":"a","score":12.5},{"id":2,"user":"b","score":42.0},{"id":3,"user":"c","score":-3.7}]`,
			want: []Entry{{ID: "1", User: "a", Score: 12}, {ID: "2", User: "b", Score: 42}, {ID: "3", User: "c", Score: -3}},
		},
		{
			name: "numeric strings",
			in:   `[{"id":"x","user":"a","score":"42"},{"id":"y","user":"b","score":" 9.9 "}]`,
			want: []Entry{{ID: "x", User: "a", Score: 42}, {ID: "y", User: "b", Score: 9}},
		},
		{
			name: "unparseable score reads as zero",
			in:   `[{"id":1,"user":"a","score":"lots"},{"id":2,"user":"b"}]`,
			want: []Entry{{ID: "1", User: "a"}, {ID: "2", User: "b"}},
		},
		{
			name: "large ids kept exactly",
			in:   `[{"id":9007199254740993,"user":"a","score":1}]`,
			want: []Entry{{ID: "9007199254740993", User: "a", Score: 1}},
		},
		{
			name: "extra fields and non objects ignored",
			in:   `[{"id":1,"user":"a","score":5,"gameName":"AdventureGame","rank":9}, 3, null]`,
			want: []Entry{{ID: "1", User: "a", Score: 5, GameName: "AdventureGame"}},
		},
		{
			name: "non array is empty",
			in:   `{"message":"none"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeElementary([]byte(tc.in))
			if err != nil {
				t.Fatalf("decodeElementary returned error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("decodeElementary = %#v, want %#v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("decodeElementary[%d] = %#v, want %#v", i, got[i], tc.want[i])
				}
			}
		})
	}

	if _, err := decodeElementary([]byte(`[{`)); err == nil {
		t.Fatalf("decodeElementary returned nil error for invalid json")
	}
}

func TestNewEntry_MarshalHasNoID(t *testing.T) {
	raw, err := json.Marshal(NewEntry{User: "Ann", Score: 42, GameName: "AdventureGame"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `{"user":"Ann","score":42,"gameName":"AdventureGame"}`
	if string(raw) != want {
		t.Fatalf("Marshal = %s, want %s", raw, want)
	}
}

func TestDecodeGlobal(t *testing.T) {
	t.Run("prefers primary keys", func(t *testing.T) {
		got, err := decodeGlobal([]byte(`[{"user":"A","username":"B","gameName":"G1","game":"G2","score":5}]`))
		if err != nil {
			t.Fatalf("decodeGlobal returned error: %v", err)
		}
		if len(got) != 1 || got[0].User != "A" || got[0].Game != "G1" || got[0].Score != 5 {
			t.Fatalf("decodeGlobal = %#v", got)
		}
	})

	t.Run("decimal and string scores truncate", func(t *testing.T) {
		got, err := decodeGlobal([]byte(`[{"user":"A","score":1234.9},{"user":"B","score":"77"}]`))
		if err != nil {
			t.Fatalf("decodeGlobal returned error: %v", err)
		}
		if len(got) != 2 || got[0].Score != 1234 || got[1].Score != 77 {
			t.Fatalf("decodeGlobal = %#v", got)
		}
	})

	t.Run("non array is empty", func(t *testing.T) {
		got, err := decodeGlobal([]byte(`{"message":"none"}`))
		if err != nil || len(got) != 0 {
			t.Fatalf("decodeGlobal = %#v, %v; want empty, nil", got, err)
		}
	})

	t.Run("empty body is empty", func(t *testing.T) {
		got, err := decodeGlobal([]byte("  "))
		if err != nil || len(got) != 0 {
			t.Fatalf("decodeGlobal = %#v, %v; want empty, nil", got, err)
		}
	})

	t.Run("invalid json errors", func(t *testing.T) {
		if _, err := decodeGlobal([]byte(`[{`)); err == nil {
			t.Fatalf("decodeGlobal returned nil error for invalid json")
		}
	})
}
