package sort

// Snapshot is a frozen copy of a Sequence at one step.
type Snapshot = Sequence

// Recorder is an append-only log of snapshots, in playback order.
type Recorder struct {
	snapshots []Snapshot
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a deep copy of seq.
func (r *Recorder) Record(seq Sequence) {
	r.snapshots = append(r.snapshots, seq.Clone())
}

// Reset drops every recorded snapshot.
func (r *Recorder) Reset() {
	r.snapshots = nil
}

func (r *Recorder) Len() int { return len(r.snapshots) }

// Snapshots returns the recorded trace. Callers must treat it as read-only.
func (r *Recorder) Snapshots() []Snapshot {
	return r.snapshots
}

// Last returns the most recent snapshot, or nil when nothing was recorded.
func (r *Recorder) Last() Snapshot {
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

// Size is the number of elements held across all snapshots.
func (r *Recorder) Size() int {
	n := 0
	for _, s := range r.snapshots {
		n += len(s)
	}
	return n
}
