package segment

import (
	"slices"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want byte
	}{
		{"zero", '0', 0x7E},
		{"one", '1', 0x30},
		{"eight lights a-g", '8', 0x7F},
		{"upper H", 'H', 0x37},
		{"lower h", 'h', 0x17},
		{"dot", '.', Dot},
		{"comma", ',', Dot},
		{"space", ' ', Blank},
		{"unknown M", 'M', Blank},
		{"unknown rune", 'λ', Blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Default.Lookup(tt.r); got != tt.want {
				t.Errorf("Lookup(%q) = 0x%02X, want 0x%02X", tt.r, got, tt.want)
			}
		})
	}
}

func TestMapWithFallback(t *testing.T) {
	m := Default.WithFallback('_')
	if got := m.Lookup('W'); got != 0x08 {
		t.Errorf("Lookup('W') = 0x%02X, want 0x08", got)
	}
	if got := m.Lookup('1'); got != 0x30 {
		t.Errorf("Lookup('1') = 0x%02X, want 0x30", got)
	}
	// Default must not be modified
	if got := Default.Lookup('W'); got != Blank {
		t.Errorf("Default.Lookup('W') = 0x%02X, want blank", got)
	}
	if got := Default.WithFallback('W').Lookup('X'); got != Blank {
		t.Errorf("unknown fallback rune resolved to 0x%02X, want blank", got)
	}
}

func TestMapWith(t *testing.T) {
	m := Default.WithFallback('-').With(map[rune]byte{'°': 0x63, '1': 0x06})
	if got := m.Lookup('°'); got != 0x63 {
		t.Errorf("Lookup('°') = 0x%02X, want 0x63", got)
	}
	if got := m.Lookup('1'); got != 0x06 {
		t.Errorf("Lookup('1') = 0x%02X, want 0x06", got)
	}
	if got := m.Lookup('K'); got != 0x01 {
		t.Errorf("fallback not kept, Lookup('K') = 0x%02X, want 0x01", got)
	}
	if got := Default.Lookup('1'); got != 0x30 {
		t.Errorf("Default.Lookup('1') = 0x%02X, want 0x30", got)
	}
}

func TestNewMapCopiesInput(t *testing.T) {
	in := map[rune]byte{'x': 0x01}
	m := NewMap(in)
	in['x'] = 0x02
	if got := m.Lookup('x'); got != 0x01 {
		t.Errorf("Lookup('x') = 0x%02X, want 0x01", got)
	}
}

func TestMunch(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{"empty", "", nil},
		{"single digit", "5", []byte{0x5B}},
		{"digits", "123", []byte{0x30, 0x6D, 0x79}},
		{"dot folds into previous", "1.2", []byte{0x30 | Dot, 0x6D}},
		{"trailing dot", "12.", []byte{0x30, 0x6D | Dot}},
		{"leading dot", ".5", []byte{Dot, 0x5B}},
		{"dot alone", ".", []byte{Dot}},
		{"double dot", "1..", []byte{0x30 | Dot, Dot}},
		{"only dots", "...", []byte{Dot, Dot, Dot}},
		{"dot after blank", " .", []byte{Dot}},
		{"comma folds", "3,1", []byte{0x79 | Dot, 0x30}},
		{"bang does not fold", "1!", []byte{0x30, 0xB0}},
		{"dot after unknown", "W.", []byte{Dot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Munch(Default, tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Munch(%q) = % X, want % X", tt.text, got, tt.want)
			}
		})
	}
}

func TestMunchNilTable(t *testing.T) {
	got := slices.Collect(Munch(nil, "8."))
	want := []byte{0xFF}
	if !slices.Equal(got, want) {
		t.Errorf("Munch(nil, \"8.\") = % X, want % X", got, want)
	}
}

func TestMunchStopsEarly(t *testing.T) {
	var got []byte
	for g := range Munch(Default, "1.2.3.") {
		got = append(got, g)
		if len(got) == 2 {
			break
		}
	}
	want := []byte{0xB0, 0xED}
	if !slices.Equal(got, want) {
		t.Errorf("early break = % X, want % X", got, want)
	}
}

type upper struct{}

func (upper) Lookup(r rune) byte {
	if r == '.' {
		return Dot
	}
	return 0x7F
}

func TestMunchCustomTable(t *testing.T) {
	got := slices.Collect(Munch(upper{}, "ab.c"))
	want := []byte{0x7F, 0xFF, 0x7F}
	if !slices.Equal(got, want) {
		t.Errorf("Munch(custom) = % X, want % X", got, want)
	}
}
