package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{name: "array", in: `["Ana", " Bo ", ""]`, want: StringList{"Ana", "Bo"}},
		{name: "comma string", in: `"Ana, Bo,,Cy"`, want: StringList{"Ana", "Bo", "Cy"}},
		{name: "empty string", in: `""`, want: StringList{}},
		{name: "null", in: `null`, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req FollowUpRequest
			require.NoError(t, json.Unmarshal([]byte(`{"attendees":`+tt.in+`}`), &req))
			assert.Equal(t, tt.want, req.Attendees)
		})
	}
}

func TestStringList_RejectsNumbers(t *testing.T) {
	var req FollowUpRequest
	assert.Error(t, json.Unmarshal([]byte(`{"attendees":42}`), &req))
}

func TestPitchRequest_Normalize(t *testing.T) {
	req := PitchRequest{Pitch: "We sell shovels"}
	req.Normalize()
	assert.Equal(t, "We sell shovels", req.PitchText)

	req = PitchRequest{PitchText: "Primary", Pitch: "Alias"}
	req.Normalize()
	assert.Equal(t, "Primary", req.PitchText)
}

func TestAnalysisKind(t *testing.T) {
	for _, k := range AllKinds {
		assert.True(t, k.IsValid())
	}
	assert.False(t, AnalysisKind("summary").IsValid())
	assert.Equal(t, KindTrends, TrendRequest{}.Kind())
}

func TestAnalysisResult_ItemCount(t *testing.T) {
	r := &AnalysisResult{Kind: KindActionItems, ActionItems: []string{"a", "b"}}
	assert.Equal(t, 2, r.ItemCount())

	r = &AnalysisResult{Kind: KindPitchAnalysis, Pitch: &PitchVerdict{Strengths: []string{"s"}, Weaknesses: []string{"w1", "w2"}}}
	assert.Equal(t, 3, r.ItemCount())

	r = &AnalysisResult{Kind: KindContentAnalysis, Analysis: "text"}
	assert.Equal(t, 0, r.ItemCount())
}
