package booking

// BookedSlot is an existing reservation on the calendar together with the
// cooldown the place enforces after it ends.
type BookedSlot struct {
	Slot            TimeSlot
	CooldownMinutes int
}

func (b BookedSlot) cooldownEndMinute() int {
	cooldown := b.CooldownMinutes
	if cooldown < 0 {
		cooldown = 0
	}
	return b.Slot.EndHour()*minutesInHour + cooldown
}

// Overlaps reports whether selected collides with the booking itself or with its cooldown window.
// Bounds are exclusive, so back-to-back slots without cooldown do not overlap.
func (b BookedSlot) Overlaps(selected TimeSlot) bool {
	if !selected.Date().Equal(b.Slot.Date()) {
		return false
	}

	if selected.StartHour() < b.Slot.EndHour() && selected.EndHour() > b.Slot.StartHour() {
		return true
	}

	// minutes keep sub-hour cooldowns exact
	selStart := selected.StartHour() * minutesInHour
	selEnd := selected.EndHour() * minutesInHour
	bookedEnd := b.Slot.EndHour() * minutesInHour
	return selStart < b.cooldownEndMinute() && selEnd > bookedEnd
}

// IsAvailable accepts or rejects the whole selection: it returns false on the first conflict found.
func IsAvailable(selected []TimeSlot, booked []BookedSlot) bool {
	for _, slot := range selected {
		for _, b := range booked {
			if b.Overlaps(slot) {
				return false
			}
		}
	}
	return true
}

type Conflict struct {
	Selected TimeSlot
	Booked   BookedSlot
}

// FindConflicts lists the first conflicting booking for every selected slot that has one.
// It is for reporting only; IsAvailable remains the accept/reject decision.
func FindConflicts(selected []TimeSlot, booked []BookedSlot) []Conflict {
	var conflicts []Conflict
	for _, slot := range selected {
		for _, b := range booked {
			if b.Overlaps(slot) {
				conflicts = append(conflicts, Conflict{Selected: slot, Booked: b})
				break
			}
		}
	}
	return conflicts
}

// FindInternalConflicts pairs up selected slots that collide with each other once the place
// cooldown is applied after each of them. Booked holds the slot of the pair that starts first.
func FindInternalConflicts(slots []TimeSlot, cooldownMinutes int) []Conflict {
	var conflicts []Conflict
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			first, second := slots[i], slots[j]
			if second.Date().Equal(first.Date()) && second.StartHour() < first.StartHour() {
				first, second = second, first
			}
			earlier := BookedSlot{Slot: first, CooldownMinutes: cooldownMinutes}
			later := BookedSlot{Slot: second, CooldownMinutes: cooldownMinutes}
			if earlier.Overlaps(second) || later.Overlaps(first) {
				conflicts = append(conflicts, Conflict{Selected: second, Booked: earlier})
			}
		}
	}
	return conflicts
}
