package sudoku

import (
	"reflect"
	"testing"
)

const easyDigits = "306200000000603000090080403078005000020000050000400870504070090000301000000002105"

func TestParse(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "single line",
			args: args{text: easyDigits},
			want: easyDigits,
		},
		{
			name: "spaced rows",
			args: args{text: easyPuzzle},
			want: easyDigits,
		},
		{
			name: "grid with separators",
			args: args{text: `3 0 6 | 2 0 0 | 0 0 0
0 0 0 | 6 0 3 | 0 0 0
0 9 0 | 0 8 0 | 4 0 3
------+-------+------
0 7 8 | 0 0 5 | 0 0 0
0 2 0 | 0 0 0 | 0 5 0
0 0 0 | 4 0 0 | 8 7 0
------+-------+------
5 0 4 | 0 7 0 | 0 9 0
0 0 0 | 3 0 1 | 0 0 0
0 0 0 | 0 0 2 | 1 0 5
`},
			want: easyDigits,
		},
		{
			name:    "too few digits",
			args:    args{text: "123456780"},
			wantErr: true,
		},
		{
			name:    "too many digits",
			args:    args{text: easyDigits + "9"},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    args{text: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if Digits(got) != tt.want {
				t.Errorf("Parse() = %v, want %v", Digits(got), tt.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		puzzle string
	}{
		{name: "partial board", puzzle: easyPuzzle},
		{name: "solved board", puzzle: easySolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.puzzle)
			again, err := Parse(Format(b, '0'))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(again, b) {
				t.Errorf("round trip = %v, want %v", Digits(again), Digits(b))
			}
		})
	}
}

func TestGridFromGridRoundTrip(t *testing.T) {
	b := mustParse(t, easyPuzzle)
	got, err := FromGrid(Grid(b))
	if err != nil {
		t.Fatalf("FromGrid() error = %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("FromGrid(Grid()) = %v, want %v", Digits(got), Digits(b))
	}
}

func TestFromGridRejects(t *testing.T) {
	t.Run("wrong row count", func(t *testing.T) {
		grid := Grid(mustParse(t, easyPuzzle))
		if _, err := FromGrid(grid[:8]); err == nil {
			t.Error("FromGrid() error = nil, want error")
		}
	})
	t.Run("short row", func(t *testing.T) {
		grid := Grid(mustParse(t, easyPuzzle))
		grid[3] = grid[3][:8]
		if _, err := FromGrid(grid); err == nil {
			t.Error("FromGrid() error = nil, want error")
		}
	})
	t.Run("value out of range", func(t *testing.T) {
		grid := Grid(mustParse(t, easyPuzzle))
		grid[0][0] = 10
		if _, err := FromGrid(grid); err == nil {
			t.Error("FromGrid() error = nil, want error")
		}
	})
}
