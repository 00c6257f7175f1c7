package classification

import (
	"testing"

	"github.com/lox/holdem/poker"
)

func TestDetectDraws(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		hole      string
		board     string
		flush     bool
		flushSuit uint8
		straight  *StraightDrawKind
	}{
		{name: "nothing", hole: "AsKd", board: "7h2c9s"},
		{name: "flush draw", hole: "AhKh", board: "7h2h9s", flush: true, flushSuit: poker.Hearts},
		{name: "made flush is not a draw", hole: "AhKh", board: "7h2h9h"},
		{name: "open ended", hole: "9s8d", board: "7h6c2s", straight: kind(OpenEnded)},
		{name: "open ended low", hole: "2s3d", board: "4h5cKs", straight: kind(OpenEnded)},
		{name: "gutshot", hole: "9s8d", board: "6h5cKs", straight: kind(Gutshot)},
		{name: "wheel draw", hole: "As2d", board: "3h4cKs", straight: kind(Gutshot)},
		{name: "broadway draw", hole: "AsKd", board: "QhJc2s", straight: kind(Gutshot)},
		{name: "made straight is not a draw", hole: "9s8d", board: "7h6c5s", straight: nil},
		{name: "made wheel is not a draw", hole: "As2d", board: "3h4c5s"},
		{
			name: "combo draw", hole: "9h8h", board: "7h6c2h",
			flush: true, flushSuit: poker.Hearts, straight: kind(OpenEnded),
		},
		{name: "turn board", hole: "QsJd", board: "Th9c2s3d", straight: kind(OpenEnded)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := DetectDraws(poker.MustParseCards(tt.hole), poker.MustParseCards(tt.board))

			if tt.flush {
				if info.FlushDraw == nil {
					t.Fatalf("expected flush draw, got %s", info)
				}
				if info.FlushDraw.Suit != tt.flushSuit || info.FlushDraw.Outs != FlushDrawOuts {
					t.Errorf("flush draw = %+v", *info.FlushDraw)
				}
			} else if info.FlushDraw != nil {
				t.Errorf("unexpected flush draw %+v", *info.FlushDraw)
			}

			switch {
			case tt.straight == nil && info.StraightDraw != nil:
				t.Errorf("unexpected straight draw %+v", *info.StraightDraw)
			case tt.straight != nil && info.StraightDraw == nil:
				t.Errorf("expected %s draw, got none", *tt.straight)
			case tt.straight != nil && info.StraightDraw.Kind != *tt.straight:
				t.Errorf("straight draw = %s, want %s", info.StraightDraw.Kind, *tt.straight)
			}
		})
	}
}

func TestStraightDrawOuts(t *testing.T) {
	t.Parallel()
	oesd := DetectDraws(poker.MustParseCards("9s8d"), poker.MustParseCards("7h6c2s"))
	if oesd.StraightDraw == nil || oesd.StraightDraw.Outs != OpenEndedOuts {
		t.Errorf("open ended outs = %+v", oesd.StraightDraw)
	}
	gut := DetectDraws(poker.MustParseCards("9s8d"), poker.MustParseCards("6h5cKs"))
	if gut.StraightDraw == nil || gut.StraightDraw.Outs != GutshotOuts {
		t.Errorf("gutshot outs = %+v", gut.StraightDraw)
	}
}

func TestDrawInfoString(t *testing.T) {
	t.Parallel()
	info := DetectDraws(poker.MustParseCards("9h8h"), poker.MustParseCards("7h6c2h"))
	if !info.IsComboDraw() || !info.HasDraw() {
		t.Fatalf("expected combo draw, got %s", info)
	}
	if got := info.String(); got != "flush draw + open-ended" {
		t.Errorf("String() = %q", got)
	}
	if got := (DrawInfo{}).String(); got != "no draw" {
		t.Errorf("empty String() = %q", got)
	}
}

func kind(k StraightDrawKind) *StraightDrawKind { return &k }
