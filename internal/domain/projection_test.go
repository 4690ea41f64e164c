package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinYear(t *testing.T, year int) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })
}

func relevantEvent(score float64, impactStart string) RelevantEvent {
	e := makeEvent("e", 0, 0, 1000, SentimentNegative, score)
	e.Timelines.ImpactStart = impactStart
	return RelevantEvent{Event: e}
}

func TestProjection_ElevenYearsFromCurrentYear(t *testing.T) {
	pinYear(t, 2026)

	projection := Projection(nil, DefaultBaseSuccessRate)
	require.Len(t, projection, 11)
	assert.Equal(t, 2026, projection[0].Year)
	assert.Equal(t, 2036, projection[10].Year)
}

func TestProjection_NoEventsStaysAtBase(t *testing.T) {
	pinYear(t, 2026)

	for _, point := range Projection(nil, DefaultBaseSuccessRate) {
		assert.Equal(t, 60.0, point.Probability)
		assert.Equal(t, 40.0, point.Risk)
	}
}

func TestProjection_NegativeEventDecays(t *testing.T) {
	pinYear(t, 2026)

	events := []RelevantEvent{relevantEvent(-0.8, "2026-01-15T00:00:00Z")}
	projection := Projection(events, DefaultBaseSuccessRate)

	// Year 0: 60 - 0.8*30 = 36. Year 1: 60 - 24*e^(-0.1) ≈ 38.28.
	assert.Equal(t, 36.0, projection[0].Probability)
	assert.Equal(t, 64.0, projection[0].Risk)
	assert.Equal(t, 38.3, projection[1].Probability)
	assert.Equal(t, 61.7, projection[1].Risk)

	// Influence fades toward the base rate.
	assert.Greater(t, projection[10].Probability, projection[0].Probability)
}

func TestProjection_CurveHead(t *testing.T) {
	pinYear(t, 2026)

	events := []RelevantEvent{relevantEvent(-0.8, "2026-01-15T00:00:00Z")}
	projection := Projection(events, DefaultBaseSuccessRate)
	require.Len(t, projection, 11)

	expected := []ProjectionPoint{
		{Year: 2026, Probability: 36.0, Risk: 64.0},
		{Year: 2027, Probability: 38.3, Risk: 61.7},
		{Year: 2028, Probability: 40.4, Risk: 59.6},
	}
	if diff := cmp.Diff(expected, projection[:3]); diff != "" {
		t.Errorf("projection head mismatch (-want +got):\n%s", diff)
	}
}

func TestProjection_FutureEventContributesNothingBeforeStart(t *testing.T) {
	pinYear(t, 2026)

	events := []RelevantEvent{relevantEvent(0.9, "2030-03-01T00:00:00Z")}
	projection := Projection(events, DefaultBaseSuccessRate)

	for _, point := range projection[:4] { // 2026–2029
		assert.Equal(t, 60.0, point.Probability)
	}
	// 2030: 60 + 0.9*30 = 87.
	assert.Equal(t, 87.0, projection[4].Probability)
}

func TestProjection_ClampsSuccess(t *testing.T) {
	pinYear(t, 2026)

	drained := []RelevantEvent{
		relevantEvent(-1, "2026-01-01T00:00:00Z"),
		relevantEvent(-1, "2026-01-01T00:00:00Z"),
	}
	projection := Projection(drained, DefaultBaseSuccessRate)
	assert.Equal(t, 20.0, projection[0].Probability)
	assert.Equal(t, 80.0, projection[0].Risk)

	boosted := []RelevantEvent{
		relevantEvent(1, "2026-01-01T00:00:00Z"),
		relevantEvent(1, "2026-01-01T00:00:00Z"),
	}
	projection = Projection(boosted, DefaultBaseSuccessRate)
	assert.Equal(t, 95.0, projection[0].Probability)
	assert.Equal(t, 5.0, projection[0].Risk)
}

func TestProjection_ProbabilityAndRiskSumTo100(t *testing.T) {
	pinYear(t, 2026)

	events := []RelevantEvent{
		relevantEvent(-0.37, "2027-01-01T00:00:00Z"),
		relevantEvent(0.21, "2029-06-01T00:00:00Z"),
	}
	for _, point := range Projection(events, DefaultBaseSuccessRate) {
		assert.InDelta(t, 100.0, point.Probability+point.Risk, 0.001)
	}
}

func TestProjection_SkipsUnparsableTimestamps(t *testing.T) {
	pinYear(t, 2026)

	events := []RelevantEvent{
		relevantEvent(-0.8, "not-a-timestamp"),
		relevantEvent(-0.5, ""),
		relevantEvent(0.4, "2026-01-01T00:00:00Z"),
	}
	projection := Projection(events, DefaultBaseSuccessRate)

	// Only the parseable event contributes: 60 + 0.4*30 = 72.
	require.Len(t, projection, 11)
	assert.Equal(t, 72.0, projection[0].Probability)
}

func TestParseImpactStart(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		wantErr bool
	}{
		{"rfc3339 with zone", "2026-04-12T00:00:00Z", 2026, false},
		{"rfc3339 with offset", "2027-04-12T05:30:00+05:30", 2027, false},
		{"no zone suffix", "2028-11-01T00:00:00", 2028, false},
		{"bare date", "2029-02-03", 2029, false},
		{"empty", "", 0, true},
		{"garbage", "next spring", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseImpactStart(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, parsed.Year())
		})
	}
}
