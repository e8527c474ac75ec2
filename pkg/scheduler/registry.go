package scheduler

import (
	"sync"
	"time"
)

// Task is one queued or running stage pass for a process.
type Task struct {
	ID         string
	ProcessID  string
	Stage      string
	Manual     bool
	Attempt    int
	EnqueuedAt time.Time
}

// taskRegistry tracks the active (queued or running) stage tasks. It
// enforces at most one active task per (process, stage) pair and lets the
// scheduler revoke everything a process still has in flight.
type taskRegistry struct {
	mu    sync.Mutex
	tasks map[string]*Task
	// stage keys are processID + "/" + stage
	stages map[string]string
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{
		tasks:  make(map[string]*Task),
		stages: make(map[string]string),
	}
}

func stageKey(processID, stage string) string {
	return processID + "/" + stage
}

// add registers a task unless its (process, stage) slot is already taken.
func (r *taskRegistry) add(t *Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stageKey(t.ProcessID, t.Stage)
	if _, busy := r.stages[key]; busy {
		return false
	}
	r.tasks[t.ID] = t
	r.stages[key] = t.ID
	return true
}

// remove drops a task from the registry. Safe for unknown ids.
func (r *taskRegistry) remove(taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return
	}
	delete(r.tasks, taskID)
	key := stageKey(t.ProcessID, t.Stage)
	if r.stages[key] == taskID {
		delete(r.stages, key)
	}
}

// contains reports whether a task is still active. Workers check this
// before running a dequeued task; a revoked task is skipped.
func (r *taskRegistry) contains(taskID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tasks[taskID]
	return ok
}

// active returns the task id occupying a (process, stage) slot.
func (r *taskRegistry) active(processID, stage string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.stages[stageKey(processID, stage)]
	return id, ok
}

// revoke removes every task belonging to a process and returns the
// revoked ids. Queued copies of these tasks are skipped when dequeued.
func (r *taskRegistry) revoke(processID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var revoked []string
	for id, t := range r.tasks {
		if t.ProcessID != processID {
			continue
		}
		delete(r.tasks, id)
		delete(r.stages, stageKey(processID, t.Stage))
		revoked = append(revoked, id)
	}
	return revoked
}

// size returns the number of active tasks.
func (r *taskRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
