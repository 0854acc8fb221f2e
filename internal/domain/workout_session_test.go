package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleSession() *WorkoutSession {
	return NewWorkoutSession(1, "Leg Day", strPtr("Foco em força"), time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), 60, strPtr("bring straps"))
}

func TestNewWorkoutSession(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	s := sampleSession()
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.Completed)
	assert.Equal(t, time.UTC, s.CreatedAt.Location())
	assert.True(t, s.CreatedAt.After(before) && !s.CreatedAt.After(after), "created_at %v outside [%v, %v]", s.CreatedAt, before, after)
	assert.NotEqual(t, s.ID, sampleSession().ID)
}

func TestWorkoutSessionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *WorkoutSession)
		wantErr bool
	}{
		{name: "valid", mutate: func(s *WorkoutSession) {}},
		{name: "name at limit", mutate: func(s *WorkoutSession) { s.Name = strings.Repeat("a", MaxNameLength) }},
		{name: "multibyte name at limit", mutate: func(s *WorkoutSession) { s.Name = strings.Repeat("ç", MaxNameLength) }},
		{name: "name too long", mutate: func(s *WorkoutSession) { s.Name = strings.Repeat("a", MaxNameLength+1) }, wantErr: true},
		{name: "empty name", mutate: func(s *WorkoutSession) { s.Name = "" }, wantErr: true},
		{name: "zero duration", mutate: func(s *WorkoutSession) { s.DurationMinutes = 0 }, wantErr: true},
		{name: "negative duration", mutate: func(s *WorkoutSession) { s.DurationMinutes = -5 }, wantErr: true},
		{name: "missing schedule", mutate: func(s *WorkoutSession) { s.ScheduledAt = time.Time{} }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSession()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkoutSession)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	s := sampleSession()
	s.MarkCompleted()
	s.MarkCompleted()
	assert.True(t, s.Completed)
}

func TestPatchDecodeDistinguishesUnsetFromNull(t *testing.T) {
	var p WorkoutSessionPatch
	require.NoError(t, json.Unmarshal([]byte(`{"duration_minutes": 75, "notes": null}`), &p))

	assert.True(t, p.DurationMinutes.Set)
	assert.Equal(t, 75, p.DurationMinutes.Value)
	assert.True(t, p.Notes.Set)
	assert.True(t, p.Notes.Null)
	assert.False(t, p.Name.Set)
	assert.False(t, p.Description.Set)
	assert.False(t, p.Completed.Set)
	assert.False(t, p.IsEmpty())

	var empty WorkoutSessionPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsEmpty())
}

func TestPatchApplyLeavesAbsentFieldsUntouched(t *testing.T) {
	s := sampleSession()
	original := *s

	p := WorkoutSessionPatch{DurationMinutes: Some(75)}
	require.NoError(t, p.Validate())
	p.Apply(s)

	assert.Equal(t, 75, s.DurationMinutes)
	original.DurationMinutes = 75
	assert.Equal(t, original, *s)
}

func TestPatchApplyEveryField(t *testing.T) {
	s := sampleSession()
	newTime := time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)

	p := WorkoutSessionPatch{
		Name:            Some("Push Day"),
		Description:     Null[string](),
		ScheduledAt:     Some(Timestamp{Time: newTime}),
		DurationMinutes: Some(45),
		Completed:       Some(true),
		Notes:           Some("felt strong"),
	}
	require.NoError(t, p.Validate())
	p.Apply(s)

	assert.Equal(t, "Push Day", s.Name)
	assert.Nil(t, s.Description)
	assert.Equal(t, newTime, s.ScheduledAt)
	assert.Equal(t, 45, s.DurationMinutes)
	assert.True(t, s.Completed)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "felt strong", *s.Notes)
	assert.Equal(t, int64(1), s.AthleteID)
}

func TestPatchCanReopenCompletedSession(t *testing.T) {
	s := sampleSession()
	s.MarkCompleted()

	WorkoutSessionPatch{Completed: Some(false)}.Apply(s)
	assert.False(t, s.Completed)
}

func TestPatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		patch   WorkoutSessionPatch
		wantErr bool
	}{
		{name: "empty", patch: WorkoutSessionPatch{}},
		{name: "null description", patch: WorkoutSessionPatch{Description: Null[string]()}},
		{name: "null name", patch: WorkoutSessionPatch{Name: Null[string]()}, wantErr: true},
		{name: "long name", patch: WorkoutSessionPatch{Name: Some(strings.Repeat("x", 101))}, wantErr: true},
		{name: "zero duration", patch: WorkoutSessionPatch{DurationMinutes: Some(0)}, wantErr: true},
		{name: "null duration", patch: WorkoutSessionPatch{DurationMinutes: Null[int]()}, wantErr: true},
		{name: "null schedule", patch: WorkoutSessionPatch{ScheduledAt: Null[Timestamp]()}, wantErr: true},
		{name: "null completed", patch: WorkoutSessionPatch{Completed: Null[bool]()}, wantErr: true},
		{name: "empty name", patch: WorkoutSessionPatch{Name: Some("")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkoutSession)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionalMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[int]    `json:"a"`
		B Optional[string] `json:"b"`
	}{A: Some(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 3, "b": null}`, string(out))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "utc designator", input: "2024-01-15T14:00:00Z", want: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)},
		{name: "offset", input: "2024-01-15T14:00:00-03:00", want: time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)},
		{name: "no offset", input: "2024-01-15T14:00:00", want: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)},
		{name: "no offset with fraction", input: "2024-01-15T14:00:00.250", want: time.Date(2024, 1, 15, 14, 0, 0, 250_000_000, time.UTC)},
		{name: "space separator", input: "2024-01-15 14:00:00", want: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2024-01-15", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestPatchDecodeScheduledAtWithoutOffset(t *testing.T) {
	var p WorkoutSessionPatch
	require.NoError(t, json.Unmarshal([]byte(`{"scheduled_at":"2024-02-01T08:30:00"}`), &p))
	require.NoError(t, p.Validate())

	s := sampleSession()
	p.Apply(s)
	assert.Equal(t, time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC), s.ScheduledAt)

	assert.Error(t, json.Unmarshal([]byte(`{"scheduled_at":42}`), &p))
}

func TestTimesAreStoredAtMillisecondPrecision(t *testing.T) {
	fine := time.Date(2024, 1, 15, 14, 0, 0, 123_456_789, time.FixedZone("BRT", -3*60*60))
	s := NewWorkoutSession(1, "Leg Day", nil, fine, 60, nil)

	assert.Equal(t, time.Date(2024, 1, 15, 17, 0, 0, 123_000_000, time.UTC), s.ScheduledAt)
	assert.Zero(t, s.CreatedAt.Nanosecond()%int(time.Millisecond))

	WorkoutSessionPatch{ScheduledAt: Some(Timestamp{Time: fine.Add(time.Hour)})}.Apply(s)
	assert.Equal(t, time.Date(2024, 1, 15, 18, 0, 0, 123_000_000, time.UTC), s.ScheduledAt)
}
