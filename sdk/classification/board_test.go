package classification

import (
	"testing"

	"github.com/lox/holdem/poker"
)

func TestAnalyzeBoard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		board string
		want  BoardTexture
	}{
		{
			// rainbow, spread 12, A-2 run +1
			name:  "dry rainbow",
			board: "As7h2c",
			want:  BoardTexture{RankSpread: 12, Connectedness: 2, Dryness: Dry},
		},
		{
			// two-tone +1, run of two +1, spread 6 +1
			name:  "two tone broadway",
			board: "KhQh7c",
			want:  BoardTexture{TwoTone: true, RankSpread: 6, Connectedness: 2, Dryness: SemiDry},
		},
		{
			// two-tone +1, run of three +3, spread +2
			name:  "connected two tone",
			board: "9h8h7s",
			want:  BoardTexture{TwoTone: true, RankSpread: 2, Connectedness: 3, Dryness: Wet},
		},
		{
			// monotone +3, run +3, spread +2
			name:  "monotone connected",
			board: "Th9h8h",
			want:  BoardTexture{Monotone: true, RankSpread: 2, Connectedness: 3, Dryness: Wet},
		},
		{
			// paired +1, spread 7 scores nothing
			name:  "paired",
			board: "AsAh7c",
			want:  BoardTexture{Paired: true, RankSpread: 7, Connectedness: 1, Dryness: Dry},
		},
		{
			// ace plays low: run A-2-3 +3, spread +2
			name:  "wheel cluster",
			board: "As2h3c",
			want:  BoardTexture{RankSpread: 2, Connectedness: 3, Dryness: SemiWet},
		},
		{
			// two-tone +1, paired +1, run of two +1, spread 4 +2
			name:  "paired two tone turn",
			board: "9h9d5h6c",
			want:  BoardTexture{TwoTone: true, Paired: true, RankSpread: 4, Connectedness: 2, Dryness: SemiWet},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AnalyzeBoard(poker.MustParseCards(tt.board))
			if got != tt.want {
				t.Errorf("AnalyzeBoard(%s) = %+v, want %+v", tt.board, got, tt.want)
			}
		})
	}
}

func TestAnalyzeBoardPreflop(t *testing.T) {
	t.Parallel()
	for _, board := range []string{"", "As", "AsKs"} {
		got := AnalyzeBoard(poker.MustParseCards(board))
		if got != (BoardTexture{Dryness: Dry}) {
			t.Errorf("AnalyzeBoard(%q) = %+v, want empty dry texture", board, got)
		}
	}
}

func TestDrynessString(t *testing.T) {
	t.Parallel()
	names := map[Dryness]string{Dry: "dry", SemiDry: "semi-dry", SemiWet: "semi-wet", Wet: "wet"}
	for d, want := range names {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), want)
		}
	}
}
