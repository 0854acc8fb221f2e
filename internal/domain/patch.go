package domain

import "fmt"

// WorkoutSessionPatch lists the mutable fields of a WorkoutSession.
// Fields left unset are not touched by Apply.
type WorkoutSessionPatch struct {
	Name            Optional[string]    `json:"name"`
	Description     Optional[string]    `json:"description"`
	ScheduledAt     Optional[Timestamp] `json:"scheduled_at"`
	DurationMinutes Optional[int]       `json:"duration_minutes"`
	Completed       Optional[bool]      `json:"completed"`
	Notes           Optional[string]    `json:"notes"`
}

// IsEmpty reports whether no field was provided.
func (p WorkoutSessionPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.ScheduledAt.Set &&
		!p.DurationMinutes.Set && !p.Completed.Set && !p.Notes.Set
}

// Validate checks the provided fields. Only description and notes may be null,
// and name follows the same rules as on creation, so it cannot be emptied.
func (p WorkoutSessionPatch) Validate() error {
	if p.Name.Set {
		if p.Name.Null {
			return fmt.Errorf("%w: name cannot be null", ErrInvalidWorkoutSession)
		}
		if err := validateName(p.Name.Value); err != nil {
			return err
		}
	}
	if p.ScheduledAt.Set && (p.ScheduledAt.Null || p.ScheduledAt.Value.IsZero()) {
		return fmt.Errorf("%w: scheduled_at cannot be null", ErrInvalidWorkoutSession)
	}
	if p.DurationMinutes.Set {
		if p.DurationMinutes.Null {
			return fmt.Errorf("%w: duration_minutes cannot be null", ErrInvalidWorkoutSession)
		}
		if err := validateDuration(p.DurationMinutes.Value); err != nil {
			return err
		}
	}
	if p.Completed.Set && p.Completed.Null {
		return fmt.Errorf("%w: completed cannot be null", ErrInvalidWorkoutSession)
	}
	return nil
}

// Apply writes every provided field onto s. Call Validate first.
func (p WorkoutSessionPatch) Apply(s *WorkoutSession) {
	if p.Name.Set {
		s.Name = p.Name.Value
	}
	if p.Description.Set {
		s.Description = p.Description.Ptr()
	}
	if p.ScheduledAt.Set {
		s.ScheduledAt = normalizeTime(p.ScheduledAt.Value.Time)
	}
	if p.DurationMinutes.Set {
		s.DurationMinutes = p.DurationMinutes.Value
	}
	if p.Completed.Set {
		s.Completed = p.Completed.Value
	}
	if p.Notes.Set {
		s.Notes = p.Notes.Ptr()
	}
}
